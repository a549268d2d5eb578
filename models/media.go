package models

// MediaUpload is an admin request to store one media file for a blog post.
type MediaUpload struct {
	// File is the base64-encoded file body. Required.
	File string `json:"file"`

	// Filename is the original client-side file name; its extension is
	// reused for the stored object. Optional.
	Filename string `json:"filename"`

	// Type is "photo" or "video" and selects the fallback extension and
	// the content-type family. Defaults to "photo".
	Type string `json:"type"`
}
