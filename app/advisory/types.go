package advisory

// Advisory processing types. JSON field names follow the upstream FAA
// export format, which is also the on-disk cache format.

// Raw is one entry of the TFR list feed, as published, before the
// per-NOTAM detail page has been fetched.
type Raw struct {
	NOTAMID     string  `json:"notam_id"`
	Description string  `json:"description"`
	Location    string  `json:"location,omitempty"`
	Type        string  `json:"type,omitempty"`
	Parsed      *Parsed `json:"parsed,omitempty"`
}

// Enriched reports whether the detail page for this advisory has been
// fetched and parsed.
func (r Raw) Enriched() bool {
	return r.Parsed != nil
}

// Parsed holds the fields extracted from a NOTAM detail page. Every
// field is independently optional in the source markup; a field the
// parser could not find is left at its zero value.
type Parsed struct {
	NOTAMID      string   `json:"notam_id"`
	IssueDate    string   `json:"issue_date"`
	Location     string   `json:"location"`
	Begin        string   `json:"begin"`
	End          string   `json:"end"`
	Reason       string   `json:"reason"`
	Type         string   `json:"type"`
	Replaced     string   `json:"replaced"`
	Airspace     Airspace `json:"airspace"`
	Restrictions string   `json:"restrictions"`
	OtherInfo    string   `json:"other_info"`
	Description  string   `json:"description"`
}

// Airspace describes the restricted volume. Effective accumulates one
// entry per "Effective Date" row found in the detail markup.
type Airspace struct {
	Center    string   `json:"center"`
	Radius    string   `json:"radius"`
	Altitude  string   `json:"altitude"`
	Effective []string `json:"effective"`
}
