package model

type SongOverview struct {
	Name string `json:"name"`
	File string `json:"file"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
