package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/matzehuels/timeaxis/pkg/buildinfo"
	"github.com/matzehuels/timeaxis/pkg/core/render/axis"
	"github.com/matzehuels/timeaxis/pkg/errors"
	"github.com/matzehuels/timeaxis/pkg/observability"
	"github.com/matzehuels/timeaxis/pkg/pipeline"
)

var contentTypes = map[string]string{
	pipeline.FormatJSON: "application/json",
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatText: "text/plain; charset=utf-8",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
}

type mapResponse struct {
	Positions []int `json:"positions"`
}

type stepResponse struct {
	Value string `json:"value"`
}

type renderResponse struct {
	Layout    axis.Layout       `json:"layout"`
	Artifacts map[string][]byte `json:"artifacts"` // base64 in JSON
	Cached    bool              `json:"cached"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

func (s *Server) handleKeyPoints(w http.ResponseWriter, r *http.Request) {
	opts, err := axisOptions(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	l, err := s.runner.Layout(r.Context(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	opts, err := axisOptions(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	values := r.URL.Query()["value"]
	if len(values) == 0 {
		s.fail(w, r, errors.New(errors.ErrCodeInvalidInput, "at least one value parameter is required"))
		return
	}
	pos, err := s.runner.Map(opts, values)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapResponse{Positions: pos})
}

func (s *Server) handleStep(w http.ResponseWriter, r *http.Request) {
	opts, err := axisOptions(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	q := r.URL.Query()
	n := 1
	if v := q.Get("n"); v != "" {
		if n, err = strconv.Atoi(v); err != nil {
			s.fail(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid n %q", v))
			return
		}
	}
	value, err := s.runner.Step(opts, q.Get("value"), n)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stepResponse{Value: value})
}

// handleRender returns the raw artifact when exactly one format is
// requested and a JSON envelope otherwise.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		s.fail(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	if len(res.Artifacts) == 1 {
		for format, data := range res.Artifacts {
			w.Header().Set("Content-Type", contentTypes[format])
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(data)
		}
		return
	}
	writeJSON(w, http.StatusOK, renderResponse{
		Layout:    res.Layout,
		Artifacts: res.Artifacts,
		Cached:    res.CacheInfo.LayoutHit && res.CacheInfo.RenderHit,
	})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
	if statusFor(errors.GetCode(err)) == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err, "request_id", RequestIDFrom(r.Context()))
	}
	writeError(w, err)
}

// axisOptions reads axis parameters from the query string.
func axisOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Kind:        q.Get("kind"),
		Begin:       q.Get("begin"),
		End:         q.Get("end"),
		Timezone:    q.Get("tz"),
		LabelFormat: q.Get("label_format"),
	}
	ints := []struct {
		name string
		dst  *int
	}{
		{"max_points", &opts.MaxPoints},
		{"lo", &opts.Pixels[0]},
		{"hi", &opts.Pixels[1]},
	}
	for _, p := range ints {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid %s %q", p.name, v)
		}
		*p.dst = n
	}
	return opts, nil
}
