package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quickpoll/internal/service"
	"github.com/rs/zerolog/log"
)

// PollPageController renders the HTML poll pages.
type PollPageController struct {
	pollService service.PollService
}

func NewPollPageController(pollService service.PollService) *PollPageController {
	return &PollPageController{pollService: pollService}
}

func (c *PollPageController) RegisterRoutes(router gin.IRouter) {
	polls := router.Group("/polls")
	polls.GET("", c.Index)
	polls.GET("/:id", c.Detail)
	polls.GET("/:id/results", c.Results)
	// A GET carries no form body, so it can only re-render the form.
	polls.GET("/:id/vote", c.Vote)
	polls.POST("/:id/vote", c.Vote)
}

// Index lists the latest published questions.
func (c *PollPageController) Index(ctx *gin.Context) {
	questions, err := c.pollService.ListLatest()
	if err != nil {
		log.Error().Err(err).Msg("Web Index: Service error")
		RenderError(ctx, http.StatusInternalServerError)
		return
	}
	ctx.HTML(http.StatusOK, "index.html", gin.H{
		"Title":              "Polls",
		"LatestQuestionList": questions,
	})
}

// Detail shows the voting form of a published question.
func (c *PollPageController) Detail(ctx *gin.Context) {
	id, ok := questionID(ctx)
	if !ok {
		return
	}
	question, err := c.pollService.GetQuestion(id)
	if err != nil {
		c.handleServiceError(ctx, "Detail", id, err)
		return
	}
	ctx.HTML(http.StatusOK, "detail.html", gin.H{
		"Title":    question.QuestionText,
		"Question": question,
	})
}

// Results shows the vote counts of a published question.
func (c *PollPageController) Results(ctx *gin.Context) {
	id, ok := questionID(ctx)
	if !ok {
		return
	}
	results, err := c.pollService.GetResults(id)
	if err != nil {
		c.handleServiceError(ctx, "Results", id, err)
		return
	}
	ctx.HTML(http.StatusOK, "results.html", gin.H{
		"Title":    results.QuestionText,
		"Question": results,
	})
}

// Vote records the posted choice and redirects to the results page, or
// re-renders the form with a validation message.
func (c *PollPageController) Vote(ctx *gin.Context) {
	id, ok := questionID(ctx)
	if !ok {
		return
	}

	var choiceID *uint
	if raw, found := ctx.GetPostForm("choice"); found {
		if v, err := strconv.ParseUint(raw, 10, 0); err == nil {
			parsed := uint(v)
			choiceID = &parsed
		}
	}

	question, err := c.pollService.Vote(id, choiceID)
	if errors.Is(err, service.ErrChoiceNotSelected) {
		ctx.HTML(http.StatusOK, "detail.html", gin.H{
			"Title":        question.QuestionText,
			"Question":     question,
			"ErrorMessage": service.ChoiceNotSelectedMessage,
		})
		return
	}
	if err != nil {
		c.handleServiceError(ctx, "Vote", id, err)
		return
	}
	ctx.Redirect(http.StatusFound, fmt.Sprintf("/polls/%d/results", id))
}

func (c *PollPageController) handleServiceError(ctx *gin.Context, op string, id uint, err error) {
	if errors.Is(err, service.ErrQuestionNotFound) {
		log.Warn().Uint("questionID", id).Msgf("Web %s: Question not found or unpublished", op)
		RenderError(ctx, http.StatusNotFound)
		return
	}
	log.Error().Err(err).Uint("questionID", id).Msgf("Web %s: Service error", op)
	RenderError(ctx, http.StatusInternalServerError)
}

// questionID parses the :id path parameter. Non-numeric ids cannot name a
// question, so they get the same 404 as a missing one.
func questionID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 0)
	if err != nil {
		RenderError(ctx, http.StatusNotFound)
		return 0, false
	}
	return uint(id), true
}

// RenderError writes the shared HTML error page.
func RenderError(ctx *gin.Context, status int) {
	ctx.HTML(status, "error.html", gin.H{
		"Title":   http.StatusText(status),
		"Status":  status,
		"Message": http.StatusText(status),
	})
}
