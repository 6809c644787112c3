package dto

// IssueTokenResponse salida de la emisión de un token de carga.
type IssueTokenResponse struct {
	Token   string `json:"token"`
	URL     string `json:"url_carga"`
	Expira  string `json:"expira"`
	Message string `json:"message"`
}
