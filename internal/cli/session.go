package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/SscSPs/field_ops_app/internal/adapters/memory"
	"github.com/SscSPs/field_ops_app/internal/apperrors"
	"github.com/SscSPs/field_ops_app/internal/core/domain"
	portsrepo "github.com/SscSPs/field_ops_app/internal/core/ports/repositories"
	"github.com/SscSPs/field_ops_app/internal/core/query"
	"github.com/SscSPs/field_ops_app/internal/core/services"
	"github.com/SscSPs/field_ops_app/internal/dto"
	"github.com/SscSPs/field_ops_app/internal/platform/logging"
	"github.com/SscSPs/field_ops_app/internal/seed"
	"github.com/SscSPs/field_ops_app/internal/utils/pagination"
	"github.com/spf13/cobra"
)

// sessionCommand is one JSON line of session input.
type sessionCommand struct {
	Op       string              `json:"op"`
	Kind     string              `json:"kind,omitempty"`
	ID       string              `json:"id,omitempty"`
	Fields   json.RawMessage     `json:"fields,omitempty"`
	Criteria dto.CriteriaRequest `json:"criteria"`

	// Paging for list.
	Limit     int    `json:"limit,omitempty"`
	NextToken string `json:"nextToken,omitempty"`
}

// sessionResult is one JSON line of session output.
type sessionResult struct {
	OK      bool                     `json:"ok"`
	Op      string                   `json:"op,omitempty"`
	Log     *dto.LogResponse         `json:"log,omitempty"`
	Logs    []dto.LogResponse        `json:"logs,omitempty"`
	Next    string                   `json:"nextToken,omitempty"`
	Rows    []dto.LogRow             `json:"rows,omitempty"`
	Summary *dto.SummaryResponse     `json:"summary,omitempty"`
	Error   string                   `json:"error,omitempty"`
	Missing []string                 `json:"missing,omitempty"`
	Invalid []apperrors.InvalidField `json:"invalid,omitempty"`
}

// Session is one in-memory store with its workflow and dashboard.
type Session struct {
	container *services.Container
	dashboard *services.Dashboard
}

// NewSession creates an empty store, optionally loads the demo records and
// opens a dashboard over it.
func NewSession(ctx context.Context, withDemoData bool) (*Session, error) {
	repo := memory.NewLogRepository()
	container := services.NewContainer(portsrepo.RepositoryProvider{LogRepo: repo})

	if withDemoData {
		if _, err := seed.LoadDemoData(ctx, container.Review); err != nil {
			return nil, err
		}
	}

	dash, err := container.NewDashboard(ctx, query.Criteria{})
	if err != nil {
		return nil, fmt.Errorf("failed to open dashboard: %w", err)
	}
	return &Session{container: container, dashboard: dash}, nil
}

// Close releases the dashboard subscription.
func (s *Session) Close() {
	s.dashboard.Close()
}

// Dashboard returns the session's live view.
func (s *Session) Dashboard() *services.Dashboard {
	return s.dashboard
}

// Run executes JSON-lines commands from r, writing one JSON result per
// command to w. Blank lines and lines starting with '#' are skipped.
func (s *Session) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	logger := logging.FromContext(ctx)
	enc := json.NewEncoder(w)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		var cmd sessionCommand
		var res sessionResult
		if err := json.Unmarshal([]byte(text), &cmd); err != nil {
			res = failure("", fmt.Errorf("line %d: malformed command: %w", line, err))
		} else {
			res = s.execute(ctx, cmd)
		}
		if !res.OK {
			logger.Debug("Session command failed", slog.Int("line", line), slog.String("op", res.Op), slog.String("error", res.Error))
		}
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read commands: %w", err)
	}
	return nil
}

func (s *Session) execute(ctx context.Context, cmd sessionCommand) sessionResult {
	var res sessionResult
	var err error
	switch cmd.Op {
	case "submit":
		res, err = s.submit(ctx, cmd)
	case "edit":
		res, err = s.edit(ctx, cmd)
	case "approve":
		err = s.container.Review.Approve(ctx, cmd.ID)
	case "filter":
		res, err = s.filter(cmd)
	case "list":
		res, err = s.list(ctx, cmd)
	case "summary":
		summary := dto.ToSummaryResponse(s.dashboard.Summary())
		res.Summary = &summary
	default:
		err = fmt.Errorf("unknown op %q", cmd.Op)
	}
	if err != nil {
		return failure(cmd.Op, err)
	}
	res.OK = true
	res.Op = cmd.Op
	return res
}

func (s *Session) submit(ctx context.Context, cmd sessionCommand) (sessionResult, error) {
	kind, err := domain.ParseLogKind(cmd.Kind)
	if err != nil {
		return sessionResult{}, err
	}
	fields, err := dto.NewLogFields(kind)
	if err != nil {
		return sessionResult{}, err
	}
	if err := decodeFields(cmd.Fields, fields); err != nil {
		return sessionResult{}, err
	}

	log, err := s.container.Review.Submit(ctx, fields)
	if err != nil {
		return sessionResult{}, err
	}
	resp := dto.ToLogResponse(*log)
	return sessionResult{Log: &resp}, nil
}

// edit overlays the supplied fields on the stored record and saves it.
func (s *Session) edit(ctx context.Context, cmd sessionCommand) (sessionResult, error) {
	stored, err := s.container.Review.GetLog(ctx, cmd.ID)
	if err != nil {
		return sessionResult{}, err
	}
	fields := dto.FieldsFromLog(*stored)
	if err := decodeFields(cmd.Fields, fields); err != nil {
		return sessionResult{}, err
	}
	edited, err := fields.ToDomain()
	if err != nil {
		return sessionResult{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if err := s.container.Review.SaveEdit(ctx, edited); err != nil {
		return sessionResult{}, err
	}

	updated, err := s.container.Review.GetLog(ctx, cmd.ID)
	if err != nil {
		return sessionResult{}, err
	}
	resp := dto.ToLogResponse(*updated)
	return sessionResult{Log: &resp}, nil
}

func (s *Session) filter(cmd sessionCommand) (sessionResult, error) {
	criteria, err := cmd.Criteria.ToCriteria()
	if err != nil {
		return sessionResult{}, err
	}
	if err := s.dashboard.SetCriteria(criteria); err != nil {
		return sessionResult{}, err
	}
	rows := dto.ToLogRows(s.dashboard.Logs())
	summary := dto.ToSummaryResponse(s.dashboard.Summary())
	return sessionResult{Rows: rows, Summary: &summary}, nil
}

func (s *Session) list(ctx context.Context, cmd sessionCommand) (sessionResult, error) {
	review := s.container.Review
	var logs []domain.Log
	switch cmd.Kind {
	case "":
		all, err := review.GetCombinedFiltered(ctx, query.Criteria{})
		if err != nil {
			return sessionResult{}, err
		}
		logs = all
	case string(domain.KindTime):
		entries, err := review.ListTimeEntries(ctx)
		if err != nil {
			return sessionResult{}, err
		}
		logs = query.Combine(entries, nil, nil)
	case string(domain.KindEquipment):
		entries, err := review.ListEquipmentEntries(ctx)
		if err != nil {
			return sessionResult{}, err
		}
		logs = query.Combine(nil, entries, nil)
	case string(domain.KindMaterial):
		entries, err := review.ListMaterialEntries(ctx)
		if err != nil {
			return sessionResult{}, err
		}
		logs = query.Combine(nil, nil, entries)
	default:
		return sessionResult{}, fmt.Errorf("unknown log kind %q", cmd.Kind)
	}
	page, next, err := pagination.PageLogs(logs, cmd.NextToken, cmd.Limit)
	if err != nil {
		return sessionResult{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	return sessionResult{Logs: dto.ToListLogResponse(page), Next: next}, nil
}

func decodeFields(raw json.RawMessage, fields dto.LogFields) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, fields); err != nil {
		return fmt.Errorf("%w: malformed fields: %s", apperrors.ErrValidation, err.Error())
	}
	return nil
}

func failure(op string, err error) sessionResult {
	res := sessionResult{OK: false, Op: op, Error: err.Error()}
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		res.Missing = verr.Missing
		res.Invalid = verr.Invalid
	}
	return res
}

func newSessionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Run JSON-lines commands from stdin against one session",
		Long: `Reads one JSON command per line from stdin and prints one JSON result per line.

  {"op":"submit","kind":"time","fields":{"employeeName":"Gale","date":"2024-07-25","jobName":"Deerfoot","regularHours":8}}
  {"op":"edit","id":"<id>","fields":{"notes":"rain delay"}}
  {"op":"approve","id":"<id>"}
  {"op":"filter","criteria":{"name":"gale","status":"Pending"}}
  {"op":"list","kind":"equipment","limit":20,"nextToken":"<token>"}
  {"op":"summary"}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session, err := NewSession(ctx, opts.seed)
			if err != nil {
				return err
			}
			defer session.Close()
			return session.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
