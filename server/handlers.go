package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seo-optimizer/contentseo/analyzer"
	"github.com/seo-optimizer/contentseo/keyword"
	"github.com/seo-optimizer/contentseo/middleware"
	"github.com/seo-optimizer/contentseo/page"
	"github.com/seo-optimizer/contentseo/rules"
	"github.com/seo-optimizer/contentseo/stats"
)

// analyzeRequest is the article submitted for analysis. FocusKeyphrase
// may hold several comma separated keyphrases.
type analyzeRequest struct {
	Title           string `json:"title"`
	MetaDescription string `json:"metaDescription"`
	Slug            string `json:"slug"`
	Content         string `json:"content"`
	FocusKeyphrase  string `json:"focusKeyphrase"`
	SiteURL         string `json:"siteUrl"`
}

func (r analyzeRequest) context(defaultSite string) rules.Context {
	site := r.SiteURL
	if site == "" {
		site = defaultSite
	}
	return rules.Context{
		Title:           r.Title,
		MetaDescription: r.MetaDescription,
		Slug:            r.Slug,
		Content:         r.Content,
		SiteURL:         site,
	}
}

type analyzeURLRequest struct {
	URL            string `json:"url" binding:"required"`
	FocusKeyphrase string `json:"focusKeyphrase"`
}

type singleResponse struct {
	Results        []analyzer.RuleResult     `json:"results"`
	GroupedResults []analyzer.GroupedResults `json:"groupedResults"`
	Score          int                       `json:"score"`
}

type urlResponse struct {
	Page     *page.Page                  `json:"page"`
	Analysis analyzer.MultiKeywordResult `json:"analysis"`
}

type ruleInfo struct {
	ID          string      `json:"id"`
	Group       rules.Group `json:"group"`
	GroupName   string      `json:"groupName"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msg})
}

// analyzerFor picks the analyzer for the request's ?locale= parameter.
func (s *Server) analyzerFor(c *gin.Context) (*analyzer.Analyzer, bool) {
	locale := s.locale
	if q := c.Query("locale"); q != "" {
		l, err := rules.ParseLocale(q)
		if err != nil {
			badRequest(c, err.Error())
			return nil, false
		}
		locale = l
	}
	return s.analyzers[locale], true
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listRules(c *gin.Context) {
	a, ok := s.analyzerFor(c)
	if !ok {
		return
	}
	cat := a.Catalogue()
	list := make([]ruleInfo, 0, cat.Len())
	for _, r := range cat.Rules() {
		list = append(list, ruleInfo{
			ID:          r.ID,
			Group:       r.Group,
			GroupName:   cat.GroupName(r.Group),
			Name:        r.Name,
			Description: r.Description,
		})
	}
	c.JSON(http.StatusOK, gin.H{"locale": cat.Locale(), "rules": list})
}

func (s *Server) analyze(c *gin.Context) {
	a, ok := s.analyzerFor(c)
	if !ok {
		return
	}
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	c.JSON(http.StatusOK, a.AnalyzeMultiKeyphrase(req.FocusKeyphrase, req.context(s.siteURL)))
}

// analyzeSingle evaluates the first keyphrase only.
func (s *Server) analyzeSingle(c *gin.Context) {
	a, ok := s.analyzerFor(c)
	if !ok {
		return
	}
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	ctx := req.context(s.siteURL).WithKeyphrase(keyword.Parse(req.FocusKeyphrase).Primary)
	results := a.Analyze(ctx)
	c.JSON(http.StatusOK, singleResponse{
		Results:        results,
		GroupedResults: a.Group(results),
		Score:          analyzer.Score(results),
	})
}

func (s *Server) analyzeURL(c *gin.Context) {
	a, ok := s.analyzerFor(c)
	if !ok {
		return
	}
	var req analyzeURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid URL provided")
		return
	}
	c.Set(middleware.PageURLKey, req.URL)

	p, err := s.fetcher.Fetch(c.Request.Context(), req.URL)
	if err != nil {
		if errors.Is(err, page.ErrInvalidURL) {
			badRequest(c, "Invalid URL provided")
			return
		}
		s.logger.Warn("page fetch failed", zap.String("url", req.URL), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{
			"error": "Failed to fetch URL: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, urlResponse{
		Page:     p,
		Analysis: a.AnalyzeMultiKeyphrase(req.FocusKeyphrase, p.Context("")),
	})
}

func (s *Server) getStatistics(c *gin.Context) {
	out := s.statistics.Snapshot()
	if s.storage != nil {
		out["month"] = s.storage.GetCurrentStats()
		months := make(map[string]stats.MonthlyStats)
		for _, m := range s.storage.GetAllMonths() {
			if ms, ok := s.storage.GetMonthlyStats(m); ok {
				months[m] = ms
			}
		}
		out["months"] = months
	}
	c.JSON(http.StatusOK, out)
}
