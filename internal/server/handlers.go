package server

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ja7ad/fpgabuild/internal/logger"
	"github.com/ja7ad/fpgabuild/pkg/estimate"
	"github.com/ja7ad/fpgabuild/pkg/session"
	"github.com/ja7ad/fpgabuild/pkg/system/util"
)

type estimateRequest struct {
	Toolchain *string  `json:"toolchain"`
	CPU       *string  `json:"cpu"`
	Opt       *string  `json:"opt"`
	LUTs      *float64 `json:"luts"`
	FFs       *float64 `json:"ffs"`
	DSPs      *float64 `json:"dsps"`
}

// apply copies the fields present in the request onto the form.
func (r estimateRequest) apply(f *session.Form) error {
	choices := map[string]*string{
		session.FieldToolchain: r.Toolchain,
		session.FieldCPU:       r.CPU,
		session.FieldOpt:       r.Opt,
	}
	counts := map[string]*float64{
		session.FieldLUTs: r.LUTs,
		session.FieldFFs:  r.FFs,
		session.FieldDSPs: r.DSPs,
	}
	for _, field := range session.Fields() {
		if v, ok := choices[field]; ok && v != nil {
			if err := f.Set(field, *v); err != nil {
				return err
			}
		}
		if v, ok := counts[field]; ok && v != nil {
			if err := f.Set(field, util.FmtFloat(*v)); err != nil {
				return err
			}
		}
	}
	return nil
}

type resultView struct {
	Synthesis      float64           `json:"synthesis_min"`
	Implementation float64           `json:"implementation_min"`
	Bitstream      float64           `json:"bitstream_min"`
	Total          float64           `json:"total_min"`
	Formatted      map[string]string `json:"formatted"`
}

type estimateResponse struct {
	Input   estimate.Input     `json:"input"`
	Result  resultView         `json:"result"`
	Factors estimate.Breakdown `json:"factors"`
}

func newResultView(r estimate.Result) resultView {
	return resultView{
		Synthesis:      float64(r.Synthesis),
		Implementation: float64(r.Implementation),
		Bitstream:      float64(r.Bitstream),
		Total:          float64(r.Total()),
		Formatted: map[string]string{
			"synthesis":      r.Synthesis.String(),
			"implementation": r.Implementation.String(),
			"bitstream":      r.Bitstream.String(),
			"total":          r.Total().String(),
		},
	}
}

func (s *Server) estimate(c *gin.Context) {
	log := logger.FromContext(c.Request.Context())

	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithError(err).Debug("bad estimate body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	form := session.New(s.est, s.defaults)
	if err := req.apply(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := form.Input()
	res := form.Result()
	s.metrics.observe(in, res)

	log.WithFields(logrus.Fields{
		"toolchain": in.Toolchain.String(),
		"cpu":       in.CPU.String(),
		"opt":       in.Opt.String(),
		"total_min": float64(res.Total()),
	}).Debug("estimate served")

	c.JSON(http.StatusOK, estimateResponse{
		Input:   in,
		Result:  newResultView(res),
		Factors: form.Factors(),
	})
}

type option struct {
	Label  string  `json:"label"`
	Factor float64 `json:"factor"`
}

type presetsResponse struct {
	Toolchains   []option              `json:"toolchains"`
	CPUs         []option              `json:"cpus"`
	OptLevels    []option              `json:"opt_levels"`
	Defaults     estimate.Input        `json:"defaults"`
	Coefficients estimate.Coefficients `json:"coefficients"`
}

func (s *Server) presets(c *gin.Context) {
	coef := s.est.Coefficients()
	resp := presetsResponse{Defaults: s.defaults, Coefficients: coef}
	for _, t := range estimate.AllToolchains() {
		resp.Toolchains = append(resp.Toolchains, option{Label: t.String(), Factor: t.Factor()})
	}
	for _, cpu := range estimate.AllCPUs() {
		resp.CPUs = append(resp.CPUs, option{Label: cpu.String(), Factor: cpu.Factor()})
	}
	for _, o := range estimate.AllOptLevels() {
		resp.OptLevels = append(resp.OptLevels, option{Label: o.String(), Factor: float64(o.Index())*coef.OptStep + 1})
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type pageField struct {
	Name    string
	Label   string
	Value   string
	Options []string
}

type pageData struct {
	Error   string
	Fields  []pageField
	Stages  []estimate.Stage
	Total   string
	Factors estimate.Breakdown
	Link    template.URL
}

var fieldLabels = map[string]string{
	session.FieldToolchain: "Toolchain",
	session.FieldCPU:       "CPU",
	session.FieldOpt:       "Optimization Level",
	session.FieldLUTs:      "# LUTs",
	session.FieldFFs:       "# FFs",
	session.FieldDSPs:      "# DSPs",
}

func fieldOptions(field string) []string {
	var out []string
	switch field {
	case session.FieldToolchain:
		for _, t := range estimate.AllToolchains() {
			out = append(out, t.String())
		}
	case session.FieldCPU:
		for _, c := range estimate.AllCPUs() {
			out = append(out, c.String())
		}
	case session.FieldOpt:
		for _, o := range estimate.AllOptLevels() {
			out = append(out, o.String())
		}
	}
	return out
}

// index renders the form. The query string is the whole session state; the
// estimate is derived from it on every load.
func (s *Server) index(c *gin.Context) {
	form := session.New(s.est, s.defaults)
	status := http.StatusOK

	var data pageData
	if err := form.Apply(c.Request.URL.Query()); err != nil {
		status = http.StatusBadRequest
		data.Error = err.Error()
	}

	for _, field := range session.Fields() {
		data.Fields = append(data.Fields, pageField{
			Name:    field,
			Label:   fieldLabels[field],
			Value:   form.Raw(field),
			Options: fieldOptions(field),
		})
	}

	res := form.Result()
	if status == http.StatusOK {
		s.metrics.observe(form.Input(), res)
	}
	data.Stages = res.Stages()
	data.Total = res.Total().String()
	data.Factors = form.Factors()
	data.Link = template.URL("/?" + form.Values().Encode())

	c.HTML(status, "index.html", data)
}
