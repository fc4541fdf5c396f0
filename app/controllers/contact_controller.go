package controllers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/CampusFound/CampusFound/internal/pkg/apperr"
	"github.com/CampusFound/CampusFound/internal/pkg/env"
	"github.com/CampusFound/CampusFound/internal/pkg/hcaptcha"
	"github.com/CampusFound/CampusFound/internal/pkg/mail"
)

// ContactRequest is the body of POST /contact. Open to guests, so it is the
// one endpoint behind a captcha.
type ContactRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Subject      string `json:"subject"`
	Message      string `json:"message"`
	CaptchaToken string `json:"captcha_token"`
}

// HandleContact relays a contact-form submission to the configured inbox.
func HandleContact(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}

	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		return apperr.Respond(c, apperr.Validation("Email and message are required"))
	}

	if hcaptcha.Configured() {
		if ok, err := hcaptcha.Verify(req.CaptchaToken); !ok {
			log.Warnf("[Contact] Captcha verification failed: %v", err)
			return apperr.Respond(c, apperr.Validation("Captcha verification failed"))
		}
	}

	recipient := env.GetEnv("CONTACT_EMAIL", "")
	if recipient == "" {
		return apperr.Respond(c, apperr.Unexpected("Contact form is not configured", nil))
	}

	subject := req.Subject
	if subject == "" {
		subject = "Contact form message"
	}

	body := fmt.Sprintf("<p>From: %s (%s)</p><p>%s</p>", req.Name, req.Email, req.Message)
	if err := mail.SendMail(recipient, subject, body); err != nil {
		// Mail is best effort, but for the contact form there is no other
		// delivery channel, so the sender needs to know it did not go out.
		return apperr.Respond(c, apperr.Unexpected("Failed to send message, please try again later", err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Message sent, thank you!"})
}
