package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/dienstplan/dienstplan/pkg/buildinfo"
	"github.com/dienstplan/dienstplan/pkg/errors"
	"github.com/dienstplan/dienstplan/pkg/observability"
	"github.com/dienstplan/dienstplan/pkg/query"
	"github.com/dienstplan/dienstplan/pkg/report"
	"github.com/dienstplan/dienstplan/pkg/roster"
)

// shutdownTimeout bounds the graceful shutdown of the HTTP server.
const shutdownTimeout = 5 * time.Second

// newServeCmd creates the serve command, which answers queries for one
// loaded week over HTTP.
func newServeCmd() *cobra.Command {
	var addr, input string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve staffing queries over HTTP",
		Long: `Load one roster and answer queries over HTTP.

Routes:
  GET /health
  GET /version
  GET /week
  GET /views/{employee|group|leader}
  GET /days/{day}/groups/{group}
  GET /days/{day}/buckets
  GET /days/{day}/events
  GET /days/{day}/affected?target=&start=&end=
  GET /days/{day}/hours?assignment=&qualification=
  GET /days/{day}/labels/{employee}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			var in []string
			if input != "" {
				in = []string{input}
			}
			w, src, err := loadWeek(ctx, cfg, in)
			if err != nil {
				return err
			}
			logger := loggerFromContext(ctx)
			installLogHooks(logger)
			logger.Info("serving roster", "source", src, "week", w.CalendarWeek, "addr", addr)
			return serve(ctx, addr, newHandler(w, cfg))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVarP(&input, "input", "i", "", "workbook or JSON export (default: the .xlsx in input_path)")
	return cmd
}

// serve runs h on addr until ctx is done.
func serve(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if err == nil || err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// api answers queries over one immutable week. Handlers share it without
// locking.
type api struct {
	week   *roster.Week
	cfg    Config
	engine *query.Engine
}

// newHandler builds the HTTP router for w.
func newHandler(w *roster.Week, cfg Config) http.Handler {
	a := &api{week: w, cfg: cfg, engine: query.New(w.Schedules, cfg.queryOptions())}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(hooksMiddleware)

	r.Get("/health", func(rw http.ResponseWriter, _ *http.Request) {
		writeJSON(rw, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/version", func(rw http.ResponseWriter, _ *http.Request) {
		writeJSON(rw, http.StatusOK, buildinfo.Current())
	})
	r.Get("/week", func(rw http.ResponseWriter, _ *http.Request) {
		writeJSON(rw, http.StatusOK, a.week)
	})
	r.Get("/views/{view}", a.view)

	r.Route("/days/{day}", func(r chi.Router) {
		r.Get("/groups/{group}", a.dayHandler(a.groups))
		r.Get("/buckets", a.dayHandler(a.buckets))
		r.Get("/events", a.dayHandler(a.events))
		r.Get("/affected", a.dayHandler(a.affected))
		r.Get("/hours", a.dayHandler(a.hours))
		r.Get("/labels/{employee}", a.dayHandler(a.labels))
	})

	return r
}

// hooksMiddleware reports requests and responses to the server hooks.
func hooksMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		hooks := observability.Server()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(rw, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, time.Since(start))
	})
}

// dayQuery answers a query for one day.
type dayQuery func(r *http.Request, d roster.Weekday) (any, error)

func (a *api) dayHandler(q dayQuery) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		d, err := roster.ParseWeekday(chi.URLParam(r, "day"))
		if err != nil {
			writeError(rw, err)
			return
		}
		v, err := q(r, d)
		if err != nil {
			writeError(rw, err)
			return
		}
		writeJSON(rw, http.StatusOK, v)
	}
}

func (a *api) groups(r *http.Request, d roster.Weekday) (any, error) {
	return nonNil(a.engine.GroupMembership(roster.Assignment(chi.URLParam(r, "group")), d)), nil
}

func (a *api) buckets(_ *http.Request, d roster.Weekday) (any, error) {
	buckets := a.cfg.ShiftBuckets
	if len(buckets) == 0 {
		buckets = query.DefaultShiftBuckets
	}
	return a.engine.ShiftBucketing(buckets, d), nil
}

func (a *api) events(_ *http.Request, d roster.Weekday) (any, error) {
	return nonNil(a.engine.AffectedByEvents(a.week, d)), nil
}

func (a *api) affected(r *http.Request, d roster.Weekday) (any, error) {
	q := r.URL.Query()
	target := q.Get("target")
	if target == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "target is required")
	}
	start, err := roster.ParseClock(q.Get("start"))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "start")
	}
	end, err := roster.ParseClock(q.Get("end"))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "end")
	}
	return nonNil(a.engine.AffectedEmployees(d, roster.Assignment(target), start, end)), nil
}

// hoursResult is the answer of the hours route.
type hoursResult struct {
	Day           roster.Weekday      `json:"day"`
	Assignments   []roster.Assignment `json:"assignments,omitempty"`
	Qualification string              `json:"qualification,omitempty"`
	Hours         float64             `json:"hours"`
}

func (a *api) hours(r *http.Request, d roster.Weekday) (any, error) {
	q := r.URL.Query()
	res := hoursResult{Day: d}
	if qual := q.Get("qualification"); qual != "" {
		res.Qualification = qual
		res.Hours = a.engine.HoursByQualification(a.week.Staff, qual, d)
		return res, nil
	}
	for _, s := range q["assignment"] {
		res.Assignments = append(res.Assignments, roster.Assignment(s))
	}
	if len(res.Assignments) == 0 {
		res.Assignments = a.week.Groups(roster.DefaultGroupCount)
	}
	res.Hours = a.engine.HoursByAssignment(res.Assignments, d)
	return res, nil
}

func (a *api) labels(r *http.Request, d roster.Weekday) (any, error) {
	ls, err := employeeLabels(a.week, d, chi.URLParam(r, "employee"), labelDistance(0, a.cfg))
	if err != nil {
		return nil, err
	}
	return nonNil(ls), nil
}

func (a *api) view(rw http.ResponseWriter, r *http.Request) {
	opts := a.cfg.reportOptions()
	switch name := chi.URLParam(r, "view"); name {
	case "employee":
		writeJSON(rw, http.StatusOK, report.BuildEmployeeView(a.week, opts))
	case "group":
		writeJSON(rw, http.StatusOK, report.BuildGroupView(a.week, opts))
	case "leader":
		writeJSON(rw, http.StatusOK, report.BuildLeaderView(a.week, opts))
	default:
		writeError(rw, notFound("view %q", name))
	}
}

// nonNil turns a nil slice into an empty one so it encodes as [].
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func writeError(rw http.ResponseWriter, err error) {
	writeJSON(rw, errors.HTTPStatus(err), map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}

func writeJSON(rw http.ResponseWriter, status int, payload any) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_ = json.NewEncoder(rw).Encode(payload)
}
