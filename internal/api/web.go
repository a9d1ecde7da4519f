package api

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"InvestorClassifier/internal/model"
	"InvestorClassifier/internal/report"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

func loadTemplates() *template.Template {
	funcs := template.FuncMap{
		"factorLine": report.FactorLine,
		"number":     report.Number,
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl"))
}

// formDefaults pre-fill the web form on first load.
var formDefaults = map[string]string{
	"age":                   "28",
	"monthly_income":        "120000",
	"monthly_emi":           "15000",
	"emergency_mode":        emergencyByMonths,
	"emergency_fund_months": "4",
	"emergency_fund_amount": "300000",
	"monthly_expenses":      "75000",
	"has_health":            "true",
	"dependants":            "1",
	"risk_attitude":         "3",
	"investment_knowledge":  "3",
	"drawdown_reaction":     string(model.DrawdownWait),
	"time_horizon":          "5",
	"return_expectation":    "10",
}

type formPage struct {
	Values    map[string]string
	Drawdowns []model.DrawdownReaction
	Error     string
	Details   map[string]string
}

type resultPage struct {
	Result model.ClassificationResult
}

func (h *Handler) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", formPage{Values: formDefaults, Drawdowns: model.DrawdownReactions})
}

func (h *Handler) submitForm(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		h.renderForm(c, http.StatusBadRequest, "could not read form", nil)
		return
	}
	// Blank inputs mean "not provided", not zero.
	dropEmpty(c.Request.Form)
	dropEmpty(c.Request.PostForm)

	var req FormRequest
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		h.renderForm(c, http.StatusBadRequest, "could not read form: "+err.Error(), nil)
		return
	}
	if err := validate.Struct(&req); err != nil {
		h.renderForm(c, http.StatusUnprocessableEntity, "please correct the highlighted fields", validationDetails(err))
		return
	}

	res := h.run(c, "form", req.ToProfile())
	c.HTML(http.StatusOK, "result.tmpl", resultPage{Result: res})
}

// renderForm re-renders the form with the submitted values and an error.
func (h *Handler) renderForm(c *gin.Context, status int, msg string, details map[string]string) {
	values := make(map[string]string, len(c.Request.PostForm))
	for k := range c.Request.PostForm {
		values[k] = c.Request.PostForm.Get(k)
	}
	c.HTML(status, "index.tmpl", formPage{
		Values:    values,
		Drawdowns: model.DrawdownReactions,
		Error:     msg,
		Details:   details,
	})
}

func dropEmpty(v url.Values) {
	for k, vs := range v {
		if len(vs) == 0 || vs[0] == "" {
			delete(v, k)
		}
	}
}
