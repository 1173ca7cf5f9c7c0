// Package assets provides the theme stylesheets applied to generated
// PDFs. Stylesheets can be loaded from embedded files or from a themes
// directory on disk.
package assets
