// Package assets provides the named binary resource tables a plugin's UI is
// built from.
//
// Resources (images, descriptions, themes) are compiled into the binary and
// addressed by logical name. Two providers are available:
//
//   - Table wraps the classic binary-data schema: a (name, size) list plus
//     index-based byte and original-filename accessors.
//   - FSProvider wraps an embed.FS, indexing files by base name and by their
//     mangled resource identifier.
//
// Both are immutable after construction and safe for concurrent reads.
// An unknown name is an absence, never a failure:
//
//	data, ok := table.Lookup("knob_bg_png")
//	if !ok {
//	    // render a placeholder, don't crash the host
//	}
package assets
