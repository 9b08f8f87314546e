package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"eventattendance/internal/domain"
	"eventattendance/internal/metrics"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

// firstDataRow is the spreadsheet row number of the first record below the header.
const firstDataRow = 2

type importService struct {
	eventRepo       domain.EventRepository
	profileRepo     domain.ProfileRepository
	participantRepo domain.ParticipantRepository
	parser          domain.SheetParser
	validate        *validator.Validate
	concurrency     int
	logger          *slog.Logger
	metrics         *metrics.Metrics
}

func NewImportService(
	eventRepo domain.EventRepository,
	profileRepo domain.ProfileRepository,
	participantRepo domain.ParticipantRepository,
	parser domain.SheetParser,
	concurrency int,
	logger *slog.Logger,
	m *metrics.Metrics,
) domain.ImportService {
	if concurrency < 1 {
		concurrency = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	return &importService{
		eventRepo:       eventRepo,
		profileRepo:     profileRepo,
		participantRepo: participantRepo,
		parser:          parser,
		validate:        validate,
		concurrency:     concurrency,
		logger:          logger,
		metrics:         m,
	}
}

// importRow is a record to process; index is its slot in the report.
type importRow struct {
	index  int
	row    int
	fields domain.PersonFields
}

func recordFields(rec map[string]string) domain.PersonFields {
	idNumber := rec[domain.HeaderStudentID]
	if strings.TrimSpace(idNumber) == "" {
		idNumber = rec[domain.HeaderStudentNumber]
	}
	return domain.PersonFields{
		IDNumber:          idNumber,
		FirstName:         rec[domain.HeaderFirstName],
		LastName:          rec[domain.HeaderLastName],
		MiddleName:        rec[domain.HeaderMiddleName],
		Email:             rec[domain.HeaderEmail],
		Phone:             rec[domain.HeaderPhone],
		CollegeDepartment: rec[domain.HeaderCollegeDepartment],
		Course:            rec[domain.HeaderCourse],
		YearLevel:         rec[domain.HeaderYearLevel],
		Section:           rec[domain.HeaderSection],
	}.Normalize()
}

// prepare parses the sheet and splits it into rows to process and rows already
// settled: invalid rows are dropped and repeats of an ID number within the file
// are skipped, so each ID number is processed at most once.
func (s *importService) prepare(filename string, r io.Reader) ([]importRow, []domain.ImportRowResult, error) {
	records, err := s.parser.Parse(filename, r)
	if err != nil {
		return nil, nil, err
	}

	var rows []importRow
	results := make([]domain.ImportRowResult, len(records))
	seen := make(map[string]int, len(records))
	for i, rec := range records {
		row := rec.Row
		if row == 0 {
			row = i + firstDataRow
		}
		fields := recordFields(rec.Cells)
		results[i] = domain.ImportRowResult{Row: row, IDNumber: fields.IDNumber}

		if err := s.validate.Struct(fields); err != nil {
			results[i].Status = domain.ImportDropped
			results[i].Reason = missingFields(err)
			continue
		}
		if first, ok := seen[fields.IDNumber]; ok {
			results[i].Status = domain.ImportSkipped
			results[i].Reason = fmt.Sprintf("duplicate of row %d", first)
			continue
		}
		seen[fields.IDNumber] = row
		rows = append(rows, importRow{index: i, row: row, fields: fields})
	}
	return rows, results, nil
}

func missingFields(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		names = append(names, fe.Field())
	}
	return "missing " + strings.Join(names, ", ")
}

// ImportParticipants registers every row of the sheet to the event, reusing the
// workspace profile of each ID number and creating the profile when absent.
func (s *importService) ImportParticipants(ctx context.Context, workspaceID, eventID, filename string, r io.Reader) (*domain.ImportReport, error) {
	start := time.Now()
	if _, err := s.eventRepo.GetByID(ctx, workspaceID, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	rows, results, err := s.prepare(filename, r)
	if err != nil {
		return nil, err
	}

	profiles, err := s.profileSnapshot(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	participants, err := s.participantRepo.ListByEvent(ctx, workspaceID, eventID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	registered := make(map[string]bool, len(participants))
	for _, p := range participants {
		registered[domain.NormalizeIDNumber(p.IDNumber)] = true
		registered[p.ID] = true
	}

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for _, row := range rows {
		slot := &results[row.index]
		g.Go(func() error {
			*slot = s.importParticipantRow(ctx, workspaceID, eventID, row, profiles[row.fields.IDNumber], registered)
			return nil
		})
	}
	_ = g.Wait()

	report := s.report(results)
	s.logger.InfoContext(ctx, "participants imported",
		"workspace_id", workspaceID, "event_id", eventID, "file", filename,
		"total", report.Total, "created", report.Created, "linked", report.Linked,
		"skipped", report.Skipped, "dropped", report.Dropped, "failed", report.Failed,
		"duration_ms", time.Since(start).Milliseconds())
	return report, nil
}

// importParticipantRow runs on its own goroutine; profile and registered are
// read-only snapshots.
func (s *importService) importParticipantRow(ctx context.Context, workspaceID, eventID string, row importRow, profile *domain.Profile, registered map[string]bool) domain.ImportRowResult {
	res := domain.ImportRowResult{Row: row.row, IDNumber: row.fields.IDNumber}
	if registered[row.fields.IDNumber] {
		res.Status = domain.ImportSkipped
		res.Reason = "already registered"
		if profile != nil {
			res.ProfileID = profile.ID
		}
		return res
	}

	res.Status = domain.ImportLinked
	if profile == nil {
		p, created, err := createProfile(ctx, s.profileRepo, workspaceID, row.fields)
		if err != nil {
			res.Status = domain.ImportFailed
			res.Reason = err.Error()
			return res
		}
		if created {
			res.Status = domain.ImportCreated
		}
		profile = p
	}
	res.ProfileID = profile.ID

	if registered[profile.ID] {
		res.Status = domain.ImportSkipped
		res.Reason = "already registered"
		return res
	}

	now := time.Now()
	created, err := s.participantRepo.CreateIfAbsent(ctx, &domain.Participant{
		ID:           profile.ID,
		WorkspaceID:  workspaceID,
		EventID:      eventID,
		PersonFields: row.fields,
		Status:       domain.StatusRegistered,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	switch {
	case err != nil:
		res.Status = domain.ImportFailed
		res.Reason = fmt.Sprintf("create participant: %v", err)
	case !created:
		res.Status = domain.ImportSkipped
		res.Reason = "already registered"
	}
	return res
}

// ImportProfiles creates a workspace profile for every row whose ID number is new.
func (s *importService) ImportProfiles(ctx context.Context, workspaceID, filename string, r io.Reader) (*domain.ImportReport, error) {
	start := time.Now()
	rows, results, err := s.prepare(filename, r)
	if err != nil {
		return nil, err
	}
	profiles, err := s.profileSnapshot(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for _, row := range rows {
		slot := &results[row.index]
		existing := profiles[row.fields.IDNumber]
		g.Go(func() error {
			res := domain.ImportRowResult{Row: row.row, IDNumber: row.fields.IDNumber}
			if existing != nil {
				res.Status = domain.ImportSkipped
				res.ProfileID = existing.ID
				res.Reason = "profile exists"
				*slot = res
				return nil
			}
			p, created, err := createProfile(ctx, s.profileRepo, workspaceID, row.fields)
			switch {
			case err != nil:
				res.Status = domain.ImportFailed
				res.Reason = err.Error()
			case created:
				res.Status = domain.ImportCreated
				res.ProfileID = p.ID
			default:
				res.Status = domain.ImportSkipped
				res.ProfileID = p.ID
				res.Reason = "profile exists"
			}
			*slot = res
			return nil
		})
	}
	_ = g.Wait()

	report := s.report(results)
	s.logger.InfoContext(ctx, "profiles imported",
		"workspace_id", workspaceID, "file", filename,
		"total", report.Total, "created", report.Created, "skipped", report.Skipped,
		"dropped", report.Dropped, "failed", report.Failed,
		"duration_ms", time.Since(start).Milliseconds())
	return report, nil
}

func (s *importService) profileSnapshot(ctx context.Context, workspaceID string) (map[string]*domain.Profile, error) {
	list, err := s.profileRepo.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	byIDNumber := make(map[string]*domain.Profile, len(list))
	for _, p := range list {
		byIDNumber[domain.NormalizeIDNumber(p.IDNumber)] = p
	}
	return byIDNumber, nil
}

func (s *importService) report(results []domain.ImportRowResult) *domain.ImportReport {
	report := &domain.ImportReport{Rows: make([]domain.ImportRowResult, 0, len(results))}
	for _, res := range results {
		report.Add(res)
		s.metrics.ImportRow(string(res.Status))
	}
	return report
}
