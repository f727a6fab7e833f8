package domain

// Customer is a tenant customer record. The console exposes no customer
// screens yet; the type exists for the service wrappers and bulk import.
type Customer struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// BulkImportResult summarises a multipart customer upload.
type BulkImportResult struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}
