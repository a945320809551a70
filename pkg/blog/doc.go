// Package blog loads markdown-backed posts from a directory-per-locale
// content tree, exposes published metadata listings and single-post loading,
// and ranks related posts for recommendation sections.
//
// Posts are constructed on demand from the content filesystem and are
// immutable once built; the repository holds no mutable state and is safe
// for concurrent use.
package blog
