package dto

import "io"

type ProductRequest struct {
	Name        string `json:"name" form:"name"`
	Price       string `json:"price" form:"price"`
	Description string `json:"description" form:"description"`
	Category    string `json:"category" form:"category"`
	ImageURL    string `json:"image_url" form:"image_url"`
	Upload      *Upload
}

// Upload carries a multipart image payload from the controller down to the
// catalog service. Filename is the client-supplied name before sanitization.
type Upload struct {
	Filename string
	Content  io.Reader
}

type ProductFilter struct {
	Category string `query:"category"`
}
