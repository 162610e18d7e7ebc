package dto

// GroupNodeResponse one node of a catalog grouping tree. Path is the
// delimiter-joined ancestor chain clients use as the expansion handle.
type GroupNodeResponse struct {
	Key       string              `json:"key"`
	Path      string              `json:"path"`
	Level     int                 `json:"level"`
	Count     int                 `json:"count"`
	Items     []ProductResponse   `json:"items"`
	Subgroups []GroupNodeResponse `json:"subgroups,omitempty"`
}

// CatalogTreeResponse the grouped catalog for one view.
type CatalogTreeResponse struct {
	View   string              `json:"view"`
	Query  string              `json:"query,omitempty"`
	Groups []GroupNodeResponse `json:"groups"`
}
