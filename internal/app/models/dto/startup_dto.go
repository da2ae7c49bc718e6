package dto

// StartupRequest is the admin form for creating or updating a startup entry
type StartupRequest struct {
	Name              string `json:"name"`
	Slug              string `json:"slug"`
	Email             string `json:"email"`
	MobileNumber      string `json:"mobileNumber"`
	IncubatedDate     string `json:"incubatedDate"`
	IncubationDetails string `json:"incubationDetails"`
	Status            string `json:"status"`
	Website           string `json:"website"`
	Image             string `json:"image"`
}

// StartupListFilter narrows the public startup listing
type StartupListFilter struct {
	ActiveOnly bool
	Status     string
}
