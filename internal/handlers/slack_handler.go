package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/classdesk/slack-timetable-bot/internal/domain/contract"
	slackcmd "github.com/classdesk/slack-timetable-bot/internal/domain/slack"
	"github.com/classdesk/slack-timetable-bot/internal/timetable"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type SlackHandler struct {
	timetableService    contract.TimetableService
	subscriptionService contract.SubscriptionService
	signingSecret       string
	logger              *zap.Logger
}

func New(timetableService contract.TimetableService, subscriptionService contract.SubscriptionService, signingSecret string, logger *zap.Logger) *SlackHandler {
	return &SlackHandler{
		timetableService:    timetableService,
		subscriptionService: subscriptionService,
		signingSecret:       signingSecret,
		logger:              logger,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respond(w, h.createErrorResponse(err.Error()))
		return
	}

	response := h.handleCommand(r, cmd, &s)
	h.respond(w, response)
}

func (h *SlackHandler) respond(w http.ResponseWriter, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		h.logger.Error("failed to encode slash command response", zap.Error(err))
	}
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdStart:
		return h.handleStart(r, slashCmd)
	case slackcmd.CmdToday:
		return h.handleToday()
	case slackcmd.CmdNext:
		return h.handleNextClass()
	case slackcmd.CmdWeek:
		return h.handleWeek()
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command. Try `/timetable help`")
	}
}

func (h *SlackHandler) handleStart(r *http.Request, slashCmd *slack.SlashCommand) *slack.Msg {
	created, err := h.subscriptionService.Subscribe(r.Context(), slashCmd.ChannelID, slashCmd.ChannelName)
	if err != nil {
		h.logger.Error("failed to subscribe channel",
			zap.String("channel", slashCmd.ChannelID), zap.Error(err))
		return h.createErrorResponse("Could not subscribe this channel, please try again")
	}

	text := "✅ This channel is already subscribed to class reminders.\n\n" + slackcmd.GetHelpText()
	if created {
		text = "✅ Subscribed! This channel will get a reminder before each class.\n\n" + slackcmd.GetHelpText()
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text,
	}
}

func (h *SlackHandler) handleToday() *slack.Msg {
	text, err := h.timetableService.Today()
	if err != nil {
		return h.timetableError(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text,
	}
}

func (h *SlackHandler) handleNextClass() *slack.Msg {
	text, err := h.timetableService.NextClass()
	if err != nil {
		return h.timetableError(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text,
	}
}

func (h *SlackHandler) handleWeek() *slack.Msg {
	text, err := h.timetableService.Week()
	if err != nil {
		return h.timetableError(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text,
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// timetableError reports a query failure back to the user instead of going
// silent. A malformed document gets a distinct message since only an admin
// fixing the file can resolve it.
func (h *SlackHandler) timetableError(err error) *slack.Msg {
	h.logger.Error("timetable query failed", zap.Error(err))

	if errors.Is(err, timetable.ErrDataFormat) {
		return h.createErrorResponse("The timetable data is invalid, please contact an administrator")
	}
	return h.createErrorResponse("Something went wrong, please try again")
}

func (h *SlackHandler) createErrorResponse(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "❌ " + text,
	}
}
