package handler

import (
	"log/slog"
	"net/http"

	"github.com/johanchan/website/pkg/contact"
	"github.com/johanchan/website/pkg/mailer"
)

// submitContact validates a contact form submission and relays it to the
// site owner by email. Validation failures report every violated field at
// once; transport failures surface a localized generic message while the
// underlying error goes to the log.
func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	locale := h.negotiateLocale(r)

	if err := r.ParseForm(); err != nil {
		h.respondError(w, r, http.StatusBadRequest, h.translator.T(locale, "contact.empty"))
		return
	}

	sub := contact.Sanitize(contact.Submission{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Message: r.PostFormValue("message"),
	})

	if contact.IsEmpty(sub) {
		h.respondError(w, r, http.StatusBadRequest, h.translator.T(locale, "contact.empty"))
		return
	}

	result := h.validator.Validate(sub)
	if !result.Valid {
		h.respondJSON(w, r, http.StatusBadRequest, result)
		return
	}

	cfg, ok := h.emailConfig()
	if !ok {
		h.log.ErrorContext(r.Context(), "contact form submitted without email configuration")
		h.respondError(w, r, http.StatusInternalServerError, h.translator.T(locale, "contact.not_configured"))
		return
	}

	sent := h.mail.Send(r.Context(), cfg, mailer.Data{
		Name:    sub.Name,
		Email:   sub.Email,
		Message: sub.Message,
		Locale:  locale,
	})
	if !sent.Success {
		h.log.ErrorContext(r.Context(), "failed to send contact email",
			slog.String("error", sent.Error))
		h.respondError(w, r, http.StatusInternalServerError, h.translator.T(locale, "contact.send_failed"))
		return
	}

	h.respondJSON(w, r, http.StatusOK, map[string]any{
		"success":   true,
		"messageId": sent.MessageID,
		"message":   h.translator.T(locale, "contact.success"),
	})
}
