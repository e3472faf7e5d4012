package api

// User mirrors the backend's public user representation.
type User struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	ContactEmail   string `json:"contact_email,omitempty"`
	PhoneNumber    string `json:"phone_number,omitempty"`
	GraduationYear string `json:"graduation_year,omitempty"`
	GraduatedTrack string `json:"graduated_track,omitempty"`
	City           string `json:"city,omitempty"`
	Company        string `json:"company,omitempty"`
	Position       string `json:"position,omitempty"`
	TelegramHandle string `json:"telegram_handle,omitempty"`
	IsVolunteer    bool   `json:"is_volunteer,omitempty"`
}

// SignUpUser is the registration payload. The backend checks the password
// confirmation server-side, so both fields travel on the wire.
type SignUpUser struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Donation is one alumni donation entry.
type Donation struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
	User      *User  `json:"user,omitempty"`
}

// PassRequest is one campus pass request.
type PassRequest struct {
	ID            string `json:"id"`
	Description   string `json:"description"`
	GuestInfo     string `json:"guest_info"`
	Feedback      string `json:"feedback"`
	Type          string `json:"type"`
	RequestedDate string `json:"requested_date"`
	Status        string `json:"status"`
	UserID        string `json:"user_id"`
	CreatedAt     string `json:"created_at"`
	User          *User  `json:"user,omitempty"`
}

// OrderPass is the payload for requesting a new campus pass.
type OrderPass struct {
	RequestedDate string   `json:"requested_date,omitempty"`
	Guests        []string `json:"guests,omitempty"`
	Description   string   `json:"description,omitempty"`
}

// ElectiveCourse is one course open to alumni.
type ElectiveCourse struct {
	ID             string `json:"id"`
	CourseName     string `json:"course_name"`
	InstructorName string `json:"instructor_name,omitempty"`
	Description    string `json:"description,omitempty"`
	Mode           string `json:"mode,omitempty"`
}
