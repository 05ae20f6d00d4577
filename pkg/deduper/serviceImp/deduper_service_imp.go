package serviceImp

import (
	"sort"

	"newsnexus/pkg/deduper/repository"
	"newsnexus/pkg/deduper/service"
)

type deduperSvc struct{ r repository.DeduperRepository }

func New(r repository.DeduperRepository) service.DeduperService { return &deduperSvc{r} }

// ApprovedArticlesDictionary follows ArticleApproved -> Article ->
// ArticleStateContract -> State and keeps the first associated state's
// abbreviation. Articles with no state keep a nil State.
func (s *deduperSvc) ApprovedArticlesDictionary() (map[uint]service.ApprovedArticleInfo, error) {
	approveds, err := s.r.ApprovedArticles()
	if err != nil {
		return nil, err
	}
	contracts, err := s.r.StateContractsByArticle()
	if err != nil {
		return nil, err
	}
	states, err := s.r.StatesByID()
	if err != nil {
		return nil, err
	}

	dict := make(map[uint]service.ApprovedArticleInfo, len(approveds))
	for _, aa := range approveds {
		var state *string
		if scs := contracts[aa.ArticleID]; len(scs) > 0 {
			if st, ok := states[scs[0].StateID]; ok {
				abbrev := st.Abbreviation
				state = &abbrev
			}
		}
		dict[aa.ArticleID] = service.ApprovedArticleInfo{
			HeadlineForPdfReport:        aa.HeadlineForPdfReport,
			PublicationNameForPdfReport: aa.PublicationNameForPdfReport,
			PublicationDateForPdfReport: aa.PublicationDateForPdfReport,
			TextForPdfReport:            aa.TextForPdfReport,
			URLForPdfReport:             aa.URLForPdfReport,
			State:                       state,
		}
	}
	return dict, nil
}

// ReferenceNumbersByArticle folds over every ArticleReportContract ordered
// newest report first; the first number seen for an article wins, so the
// map always holds the most recently assigned reference number.
func (s *deduperSvc) ReferenceNumbersByArticle() (map[uint]string, error) {
	contracts, err := s.r.AllContractsNewestReportFirst()
	if err != nil {
		return nil, err
	}
	refs := make(map[uint]string)
	for _, c := range contracts {
		if _, ok := refs[c.ArticleID]; !ok {
			refs[c.ArticleID] = c.ArticleReferenceNumberInReport
		}
	}
	return refs, nil
}

func (s *deduperSvc) ReportCheckerTable(reportID uint, threshold float64) (map[uint]service.ReportArticleEntry, error) {
	candidates, err := s.r.ContractsByReport(reportID)
	if err != nil {
		return nil, err
	}

	// Both lookup tables are built once per invocation, not per candidate.
	dict, err := s.ApprovedArticlesDictionary()
	if err != nil {
		return nil, err
	}
	refs, err := s.ReferenceNumbersByArticle()
	if err != nil {
		return nil, err
	}

	table := make(map[uint]service.ReportArticleEntry, len(candidates))
	for _, contract := range candidates {
		articleID := contract.ArticleID
		refNumber := contract.ArticleReferenceNumberInReport

		var newInfo *service.NewArticleInformation
		if info, ok := dict[articleID]; ok {
			newInfo = &service.NewArticleInformation{
				ApprovedArticleInfo:   info,
				ArticleReportRefIDNew: refNumber,
			}
		}

		analyses, err := s.r.NonSelfAnalysesByNewArticle(articleID)
		if err != nil {
			return nil, err
		}

		// maxEmbedding covers every non-self row regardless of threshold;
		// zero rows is a valid outcome, not an error.
		maxEmbedding := 0.0
		duplicates := []service.DuplicateCandidate{}
		for _, a := range analyses {
			if a.EmbeddingSearch > maxEmbedding {
				maxEmbedding = a.EmbeddingSearch
			}
			if a.EmbeddingSearch >= threshold {
				dup := service.DuplicateCandidate{
					ArticleIDApproved: a.ArticleIDApproved,
					EmbeddingSearch:   a.EmbeddingSearch,
				}
				if ref, ok := refs[a.ArticleIDApproved]; ok {
					refCopy := ref
					dup.ArticleReportRefIDApproved = &refCopy
				}
				if info, ok := dict[a.ArticleIDApproved]; ok {
					dup.ApprovedArticleInfo = info
				}
				duplicates = append(duplicates, dup)
			}
		}
		sort.SliceStable(duplicates, func(i, j int) bool {
			return duplicates[i].EmbeddingSearch > duplicates[j].EmbeddingSearch
		})

		table[articleID] = service.ReportArticleEntry{
			MaxEmbedding:                   maxEmbedding,
			ArticleReferenceNumberInReport: refNumber,
			NewArticleInformation:          newInfo,
			ApprovedArticlesArray:          duplicates,
		}
	}
	return table, nil
}
