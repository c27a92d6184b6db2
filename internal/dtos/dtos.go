package dtos

// JobRequest covers both create (POST /api/jobs) and full update
// (PUT /api/jobs/:id). IsActive is a pointer so an omitted flag keeps
// the default (true on create, current value on update).
type JobRequest struct {
	Title            string   `json:"title" binding:"required"`
	Type             string   `json:"type" binding:"required,oneof=Full-time Part-time Contract Freelance Internship"`
	Location         string   `json:"location" binding:"required"`
	Description      string   `json:"description" binding:"required"`
	Requirements     []string `json:"requirements"`
	Responsibilities []string `json:"responsibilities"`
	IsActive         *bool    `json:"isActive"`
}

// ApplicationRequest is the public careers-form payload. There is
// deliberately no status field: applicants must not self-assign
// workflow state, so creates always start at "new".
type ApplicationRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone"`
	BPOExperience string `json:"bpoExperience" binding:"required"`
	ResumeURL     string `json:"resumeUrl"`
	CoverLetter   string `json:"coverLetter"`
	JobID         string `json:"jobId"`
	JobTitle      string `json:"jobTitle"`
}

// ContactRequest is the public contact-form payload. Same trust
// boundary as ApplicationRequest: no status field.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// StatusRequest carries a target workflow status. Enum membership is
// checked against the entity's own set in the service layer.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// NotesRequest updates admin notes on an application.
type NotesRequest struct {
	Notes string `json:"notes"`
}

// LoginRequest is the admin credential pair.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
