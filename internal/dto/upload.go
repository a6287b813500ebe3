package dto

import "github.com/biztrackr/biz_tracker_app/internal/core/domain"

// StagedFileResponse describes one staged file without its content.
type StagedFileResponse struct {
	Kind     string `json:"kind"`
	Filename string `json:"filename"`
	Size     int    `json:"size"`
}

// StagedBatchResponse lists the caller's staged upload batch.
type StagedBatchResponse struct {
	Documents []StagedFileResponse `json:"documents"`
	Images    []StagedFileResponse `json:"images"`
}

// ToStagedBatchResponse groups staged files by kind.
func ToStagedBatchResponse(files []domain.StagedFile) StagedBatchResponse {
	resp := StagedBatchResponse{
		Documents: []StagedFileResponse{},
		Images:    []StagedFileResponse{},
	}
	for _, f := range files {
		sf := StagedFileResponse{Kind: string(f.Kind), Filename: f.Filename, Size: len(f.Content)}
		if f.Kind == domain.UploadImage {
			resp.Images = append(resp.Images, sf)
		} else {
			resp.Documents = append(resp.Documents, sf)
		}
	}
	return resp
}

// CommitBatchResponse reports per-item upload outcomes.
type CommitBatchResponse struct {
	Results []domain.UploadResult `json:"results"`
}
