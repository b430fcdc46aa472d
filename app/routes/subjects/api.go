package subjects

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"student-management/app/config"
	"student-management/app/database"
	"student-management/app/models"
	"student-management/app/routes/auth"
)

// ListSubjectsAPI serves the tenant subject catalog to the principal
// and to every teacher of that principal.
func ListSubjectsAPI(c *fiber.Ctx) error {
	var principalID int

	switch ident := auth.CurrentIdentity(c).(type) {
	case models.PrincipalIdentity:
		principalID = ident.UserID
	case models.TeacherIdentity:
		teacher, err := auth.TeacherProfile(c)
		if err != nil {
			return err
		}
		principalID = teacher.PrincipalID
	default:
		return fiber.NewError(fiber.StatusForbidden, "Access denied")
	}

	subjects, err := database.ListSubjects(config.GetDB(), principalID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"subjects": subjects,
		"count":    len(subjects),
	})
}

func AddSubjectAPI(c *fiber.Ctx) error {
	principal := auth.Principal(c)

	type SubjectRequest struct {
		Name string `json:"name"`
	}
	var req SubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request")
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Subject name required")
	}

	id, err := database.CreateSubject(config.GetDB(), principal.UserID, req.Name)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Subject added",
		"id":      id,
	})
}

func DeleteSubjectAPI(c *fiber.Ctx) error {
	principal := auth.Principal(c)
	subjectID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid subject id")
	}

	err = database.DeleteSubject(config.GetDB(), subjectID, principal.UserID)
	if err == database.ErrNotFound {
		return fiber.NewError(fiber.StatusNotFound, "Subject not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Subject deleted"})
}

// ProposeSubjectAPI files a Pending proposal under the teacher's
// principal; only approval turns it into a subject and a grant.
func ProposeSubjectAPI(c *fiber.Ctx) error {
	teacher, err := auth.TeacherProfile(c)
	if err != nil {
		return err
	}

	type ProposalRequest struct {
		SubjectName string `json:"subject_name"`
	}
	var req ProposalRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request")
	}

	req.SubjectName = strings.TrimSpace(req.SubjectName)
	if req.SubjectName == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Subject name required")
	}

	id, err := database.CreateProposal(config.GetDB(), teacher.PrincipalID, teacher.ID, req.SubjectName)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Subject proposed for approval",
		"id":      id,
	})
}

func ListProposalsAPI(c *fiber.Ctx) error {
	principal := auth.Principal(c)
	proposals, err := database.ListProposals(config.GetDB(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"proposals": proposals,
		"count":     len(proposals),
	})
}

func decisionError(err error) error {
	switch err {
	case database.ErrNotFound:
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	case database.ErrAlreadyDecided:
		return fiber.NewError(fiber.StatusConflict, "Proposal already decided")
	}
	return err
}

func ApproveProposalAPI(c *fiber.Ctx) error {
	principal := auth.Principal(c)
	proposalID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid proposal id")
	}

	subjectID, err := database.ApproveProposal(config.GetDB(), proposalID, principal.UserID)
	if err != nil {
		return decisionError(err)
	}

	return c.JSON(fiber.Map{
		"message":    "Proposal approved and subject created",
		"subject_id": subjectID,
	})
}

func DeclineProposalAPI(c *fiber.Ctx) error {
	principal := auth.Principal(c)
	proposalID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid proposal id")
	}

	if err := database.DeclineProposal(config.GetDB(), proposalID, principal.UserID); err != nil {
		return decisionError(err)
	}

	return c.JSON(fiber.Map{"message": "Proposal declined"})
}
