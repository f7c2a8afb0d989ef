package server

import (
	"skillswap/internal/models"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

type addSkillRequest struct {
	SkillName   string `json:"skill_name"`
	SkillType   string `json:"skill_type"`
	Description string `json:"description"`
	Level       string `json:"level"`
}

// AddSkill handles POST /api/skills
// @Summary Add a skill
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body addSkillRequest true "Skill"
// @Success 200 {object} object{success=bool,skillId=int}
// @Failure 400 {object} models.ErrorResponse
// @Router /skills [post]
func (s *Server) AddSkill(c *fiber.Ctx) error {
	var req addSkillRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	skill, err := s.skillService.AddSkill(c.UserContext(), actor(c).UserID, service.AddSkillInput{
		SkillName:   req.SkillName,
		SkillType:   models.SkillType(req.SkillType),
		Description: req.Description,
		Level:       models.SkillLevel(req.Level),
	})
	if err != nil {
		return respondError(c, err)
	}
	return success(c, fiber.Map{"skillId": skill.ID})
}

// DeleteSkill handles DELETE /api/skills/:id
// @Summary Delete one of your skills
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Param id path int true "Skill ID"
// @Success 200 {object} object{success=bool}
// @Failure 404 {object} models.ErrorResponse
// @Router /skills/{id} [delete]
func (s *Server) DeleteSkill(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.skillService.DeleteSkill(c.UserContext(), actor(c).UserID, id); err != nil {
		return respondError(c, err)
	}
	return success(c, nil)
}
