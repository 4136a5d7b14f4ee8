package handler

// SearchResponse is the envelope for GET /api/officers/search.
type SearchResponse struct {
	Success          bool          `json:"success"`
	Count            int           `json:"count"`
	Data             []interface{} `json:"data"`
	Query            string        `json:"query"`
	JurisdictionCode string        `json:"jurisdiction_code,omitempty"`
}

// OfficerCounts reports the sizes of the related lists on an officer fetch.
type OfficerCounts struct {
	Companies int `json:"companies"`
}

// OfficerDetail groups the primary record with the companies it is
// related to. Officer is null when the upstream payload carries no
// officer record.
type OfficerDetail struct {
	Officer   interface{}   `json:"officer"`
	Companies []interface{} `json:"companies"`
	Counts    OfficerCounts `json:"counts"`
}

// GetResponse is the envelope for GET /api/officers/:officer_id.
type GetResponse struct {
	Success   bool          `json:"success"`
	Data      OfficerDetail `json:"data"`
	OfficerID string        `json:"officer_id"`
}
