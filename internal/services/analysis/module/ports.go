package module

import dom "credscan/internal/services/analysis/domain"

// Ports holds the ports exposed by the analysis module
type Ports struct {
	Analyzer dom.AnalyzerPort
}
