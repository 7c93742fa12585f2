package responses

type BlobInfo struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type UploadBlobResponse struct {
	Success  bool   `json:"success"`
	BlobURL  string `json:"blob_url"`
	FileName string `json:"file_name"`
}
