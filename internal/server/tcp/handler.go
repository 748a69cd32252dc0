package tcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/medregistry/internal/logging"
	"github.com/dmitrijs2005/medregistry/internal/server/registry"
	"github.com/dmitrijs2005/medregistry/internal/wire"
)

// Canned responses. Body texts are part of the protocol surface: existing
// clients match on them.
var (
	respAccessDenied = &wire.Response{Status: 401, Reason: "Unauthorized", ContentType: "text/plain",
		Body: "Access denied!\nInvalid username or password\r\n"}
	respAlreadyRegistered = &wire.Response{Status: 403, Reason: "Forbidden", ContentType: "text/plain",
		Body: "Patient already registered\r\n"}
	respBadRequestMethod = &wire.Response{Status: 400, Reason: "Bad Request", ContentType: "text/plain",
		Body: "Bad request method, try GET or POST\r\n"}
	respMissingEntryType = &wire.Response{Status: 400, Reason: "Bad Request", ContentType: "text/plain",
		Body: "Missing 'entry_type' header\r\n"}
	respBadEntryType = &wire.Response{Status: 400, Reason: "Bad Request", ContentType: "text/plain",
		Body: "Bad 'entry_type' header value\r\n"}
	respMissingEntryValue = &wire.Response{Status: 400, Reason: "Bad Request", ContentType: "text/plain",
		Body: "At least one of entry values is missing\r\n"}
	respBadEntryValue = &wire.Response{Status: 400, Reason: "Bad Request", ContentType: "text/plain",
		Body: "At least one of entry values is bad\r\n"}
	respBadRequestPath = &wire.Response{Status: 400, Reason: "Bad Request", ContentType: "text/plain",
		Body: "Bad request url path\r\n"}
	respBadRequest = &wire.Response{Status: 400, Reason: "Bad Request", ContentType: "text/plain",
		Body: "Bad request url\r\n"}
	respInternalError = &wire.Response{Status: 500, Reason: "Internal Server Error", ContentType: "text/plain",
		Body: "Internal server error\r\n"}
)

// Handler is the per-request state machine: decode, authenticate, branch on
// method and entry type, respond. It produces at most one response per
// request; nil means the connection is dropped silently.
type Handler struct {
	registry *registry.Service
}

func NewHandler(r *registry.Service) *Handler {
	return &Handler{registry: r}
}

func (h *Handler) Handle(ctx context.Context, logger logging.Logger, raw []byte) *wire.Response {
	req, err := wire.ParseRequest(raw)
	if err != nil {
		return parseErrorResponse(ctx, logger, err)
	}

	username := req.Query["username"]
	password := req.Query["password"]

	patientID, key, err := h.registry.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, registry.ErrInvalidCredentials) {
			return h.handleUnauthenticated(ctx, logger, req, username, password)
		}
		logger.Error(ctx, "authentication failed", "error", err.Error())
		return respInternalError
	}

	if req.Method == wire.MethodGet {
		return h.handleGet(ctx, logger, patientID, key, username)
	}
	return h.handlePost(ctx, logger, req, patientID, key, username)
}

func parseErrorResponse(ctx context.Context, logger logging.Logger, err error) *wire.Response {
	var methodErr *wire.UnsupportedMethodError
	var pathErr *wire.InvalidPathError

	switch {
	case errors.Is(err, wire.ErrFaviconProbe):
		return nil
	case errors.As(err, &methodErr):
		logger.Warn(ctx, "rejected request", "error", err.Error())
		return respBadRequestMethod
	case errors.As(err, &pathErr):
		logger.Warn(ctx, "rejected request", "error", err.Error())
		return respBadRequestPath
	default:
		logger.Warn(ctx, "rejected request", "error", err.Error())
		return respBadRequest
	}
}

// handleUnauthenticated applies the implicit-registration exception: a POST
// of entry_type patient with non-empty credentials creates the credential
// and its patient in one transaction. Everything else is denied.
func (h *Handler) handleUnauthenticated(ctx context.Context, logger logging.Logger, req *wire.Request, username, password string) *wire.Response {
	if req.Method != wire.MethodPost {
		logger.Warn(ctx, "access denied", "username", username)
		return respAccessDenied
	}

	entryType, ok := req.Headers[wire.HeaderEntryType]
	if !ok {
		return respMissingEntryType
	}
	if strings.ToLower(entryType) != wire.EntryPatient || username == "" || password == "" {
		logger.Warn(ctx, "access denied", "username", username)
		return respAccessDenied
	}

	var payload struct {
		LastName    *string `json:"last_name"`
		FirstName   *string `json:"first_name"`
		DateOfBirth *string `json:"date_of_birth"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(req.Body)), &payload); err != nil {
		return respBadEntryValue
	}
	if payload.LastName == nil || payload.FirstName == nil || payload.DateOfBirth == nil {
		return respMissingEntryValue
	}

	dob, err := registry.ParseDate(*payload.DateOfBirth)
	if err != nil {
		return respBadEntryValue
	}

	_, err = h.registry.RegisterPatient(ctx, username, password, *payload.LastName, *payload.FirstName, dob)
	switch {
	case err == nil:
	case errors.Is(err, registry.ErrAlreadyRegistered):
		return respAlreadyRegistered
	case errors.Is(err, registry.ErrBadEntryValue):
		return respBadEntryValue
	default:
		logger.Error(ctx, "registration failed", "error", err.Error())
		return respInternalError
	}

	logger.Info(ctx, "registered new patient", "username", username)
	body := fmt.Sprintf("User %s:%s successfully registered\nEntry: %s\n%s\nsuccessfully added to database!\n",
		username, password, entryType, req.Body)
	return okPlain(body)
}

func (h *Handler) handleGet(ctx context.Context, logger logging.Logger, patientID int64, key []byte, username string) *wire.Response {
	record, err := h.registry.Get(ctx, patientID, key)
	if err != nil {
		logger.Error(ctx, "record retrieval failed", "error", err.Error())
		return respInternalError
	}

	data, err := json.MarshalIndent(record, "", "    ")
	if err != nil {
		logger.Error(ctx, "record encoding failed", "error", err.Error())
		return respInternalError
	}

	logger.Info(ctx, "retrieved patient record", "username", username)
	return &wire.Response{Status: 200, Reason: "OK", ContentType: "application/json", Body: string(data) + "\n"}
}

func (h *Handler) handlePost(ctx context.Context, logger logging.Logger, req *wire.Request, patientID int64, key []byte, username string) *wire.Response {
	entryType, ok := req.Headers[wire.HeaderEntryType]
	if !ok {
		return respMissingEntryType
	}
	entryType = strings.ToLower(entryType)

	switch entryType {
	case wire.EntryPressure, wire.EntryTemperature:
	case wire.EntryPatient:
		// an authenticated session posting entry_type patient is a
		// re-registration attempt
		logger.Warn(ctx, "re-registration attempt", "username", username)
		return respAlreadyRegistered
	default:
		return respBadEntryType
	}

	var payload struct {
		Systolic    *string `json:"systolic"`
		Diastolic   *string `json:"diastolic"`
		Value       *string `json:"value"`
		Acquisition *string `json:"acquisition"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(req.Body)), &payload); err != nil {
		return respBadEntryValue
	}
	if payload.Acquisition == nil {
		return respMissingEntryValue
	}

	acquisition, err := registry.ParseAcquisition(*payload.Acquisition)
	if err != nil {
		return respBadEntryValue
	}

	if entryType == wire.EntryPressure {
		if payload.Systolic == nil || payload.Diastolic == nil {
			return respMissingEntryValue
		}
		systolic, convErr := parsePositiveFloat(*payload.Systolic)
		if convErr != nil {
			return respBadEntryValue
		}
		diastolic, convErr := parsePositiveFloat(*payload.Diastolic)
		if convErr != nil {
			return respBadEntryValue
		}
		err = h.registry.AddPressure(ctx, patientID, key, systolic, diastolic, acquisition)
	} else {
		if payload.Value == nil {
			return respMissingEntryValue
		}
		value, convErr := parsePositiveFloat(*payload.Value)
		if convErr != nil {
			return respBadEntryValue
		}
		err = h.registry.AddTemperature(ctx, patientID, key, value, acquisition)
	}

	switch {
	case err == nil:
	case errors.Is(err, registry.ErrBadEntryValue):
		return respBadEntryValue
	default:
		logger.Error(ctx, "reading insert failed", "entry_type", entryType, "error", err.Error())
		return respInternalError
	}

	logger.Info(ctx, "inserted new reading", "entry_type", entryType, "username", username)
	return okPlain(fmt.Sprintf("Entry: %s\n%s\nsuccessfully added to database!\n", entryType, req.Body))
}

func okPlain(body string) *wire.Response {
	return &wire.Response{Status: 200, Reason: "OK", ContentType: "text/plain", Body: body}
}

// parsePositiveFloat parses a numeric-string field. Measurements must be
// strictly positive finite numbers.
func parsePositiveFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, fmt.Errorf("value must be positive: %s", s)
	}
	return v, nil
}
