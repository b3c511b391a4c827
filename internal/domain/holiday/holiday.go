package holiday

import "time"

type Type string

const (
	TypePublic   Type = "PUBLIC"
	TypeFestival Type = "FESTIVAL"
	TypeOptional Type = "OPTIONAL"
)

type Holiday struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"-"`
	Type        Type      `json:"type"`
}

type Response struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Day         string `json:"day"`
	Type        Type   `json:"type"`
}

func ToResponse(h Holiday) Response {
	return Response{
		Name:        h.Name,
		Description: h.Description,
		Date:        h.Date.Format("2006-01-02"),
		Day:         h.Date.Weekday().String(),
		Type:        h.Type,
	}
}

func ToResponses(hs []Holiday) []Response {
	out := make([]Response, 0, len(hs))
	for _, h := range hs {
		out = append(out, ToResponse(h))
	}
	return out
}
