package user

// Summary is the wire shape for user listings and the login response.
type Summary struct {
	ID         string   `json:"id"`
	Username   string   `json:"username"`
	Email      string   `json:"email"`
	Roles      []string `json:"roles"`
	EmployeeID *string  `json:"employee_id,omitempty"`
}

func ToSummary(u User) Summary {
	return Summary{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Roles:      u.RoleStrings(),
		EmployeeID: u.EmployeeID,
	}
}

func ToSummaries(users []User) []Summary {
	out := make([]Summary, 0, len(users))
	for _, u := range users {
		out = append(out, ToSummary(u))
	}
	return out
}
