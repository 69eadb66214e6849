package handler

import (
	"github.com/gofiber/fiber/v2"

	"journalfetch/internal/model"
	"journalfetch/internal/service"
)

// sessionResponse is the screen state: what was entered, what is cached and
// which buttons are enabled.
type sessionResponse struct {
	Identifier string                `json:"identifier"`
	Cached     *model.CachedDocument `json:"cached,omitempty"`
	CanView    bool                  `json:"can_view"`
	CanDelete  bool                  `json:"can_delete"`
	Popup      model.Popup           `json:"popup"`
}

type downloadRequest struct {
	ID string `json:"id" form:"id"`
}

type downloadResponse struct {
	Message  string                `json:"message"`
	Document *model.CachedDocument `json:"document"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// GetSession godoc
// @Summary Current session
// @Tags session
// @Produce json
// @Success 200 {object} sessionResponse
// @Router /session [get]
func GetSession(journals service.JournalService, onboarding service.Onboarding) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := journals.Session()
		return c.JSON(sessionResponse{
			Identifier: s.Identifier,
			Cached:     s.Cached,
			CanView:    s.CanView(),
			CanDelete:  s.CanDelete(),
			Popup:      onboarding.Popup(),
		})
	}
}

// DownloadJournal godoc
// @Summary Download a journal issue
// @Description Fetches <base-url>/<id>.pdf and caches it locally.
// @Tags journal
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body downloadRequest true "journal identifier"
// @Success 200 {object} downloadResponse
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /journal/download [post]
func DownloadJournal(journals service.JournalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req downloadRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		// The identifier is used verbatim; an empty one is reported as not found by the fetcher.
		doc, err := journals.Download(c.UserContext(), req.ID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(downloadResponse{Message: MsgDownloaded, Document: doc})
	}
}

// ViewJournal godoc
// @Summary Open the cached journal in the native viewer
// @Tags journal
// @Produce json
// @Success 202 {object} messageResponse
// @Failure 409 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Failure 501 {object} errorPayload
// @Router /journal/view [post]
func ViewJournal(journals service.JournalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := journals.View(c.UserContext()); err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusAccepted).JSON(messageResponse{Message: "viewer launched"})
	}
}

// ServeJournalFile godoc
// @Summary Stream the cached journal
// @Tags journal
// @Produce application/pdf
// @Success 200 {file} file
// @Failure 409 {object} errorPayload
// @Router /journal/file [get]
func ServeJournalFile(journals service.JournalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path, err := journals.CachedPath()
		if err != nil {
			return writeServiceError(c, err)
		}
		c.Type("pdf")
		if err := c.SendFile(path); err != nil {
			return writeServiceError(c, service.ErrNoCachedDocument)
		}
		return nil
	}
}

// DeleteJournal godoc
// @Summary Delete the cached journal
// @Tags journal
// @Produce json
// @Success 200 {object} messageResponse
// @Failure 409 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /journal [delete]
func DeleteJournal(journals service.JournalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := journals.Delete(c.UserContext()); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(messageResponse{Message: MsgDeleted})
	}
}
