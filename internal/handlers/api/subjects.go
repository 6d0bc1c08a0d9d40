package api

import (
	"github.com/gofiber/fiber/v3"

	"campuslinks/internal/config"
	"campuslinks/internal/models"
)

// SubjectHandler serves the static subject catalog.
type SubjectHandler struct {
	subjects []models.Subject
}

// NewSubjectHandler flattens the YAML catalog once at startup.
// catalog may be nil, in which case the list is empty.
func NewSubjectHandler(catalog *config.Catalog) *SubjectHandler {
	var subjects []models.Subject
	if catalog != nil {
		for _, degree := range catalog.Degrees {
			for _, semester := range degree.Semesters {
				for _, subject := range semester.Subjects {
					var links []models.DefaultLink
					for _, l := range subject.Links {
						links = append(links, models.DefaultLink{Title: l.Title, URL: l.URL})
					}
					subjects = append(subjects, models.Subject{
						ID:       subject.ID,
						Name:     subject.Name,
						Degree:   degree.Slug,
						Semester: semester.Number,
						Links:    links,
					})
				}
			}
		}
	}
	return &SubjectHandler{subjects: subjects}
}

// List returns the full subject catalog.
func (h *SubjectHandler) List(c fiber.Ctx) error {
	return jsonSuccess(c, fiber.Map{"subjects": h.subjects})
}
