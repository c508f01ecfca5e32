package model

// Product represents a catalogue product as seen by the storefront when
// adding it to the cart. Only the fields snapshotted onto a cart line are
// carried here.
type Product struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Price  float64  `json:"price"`
	Image  string   `json:"image,omitempty"`
	Images []string `json:"images,omitempty"`
}

// DisplayImage returns the image snapshotted onto a cart line: the primary
// image when set, otherwise the first gallery image.
func (p Product) DisplayImage() string {
	if p.Image != "" {
		return p.Image
	}
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}
