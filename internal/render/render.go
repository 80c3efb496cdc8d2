// Package render produces the four artifacts generated for every dataset:
// the CRAB submission config, the post-processor driver, the shell wrapper
// and the fake PSet.
//
// The submission config is assembled as a crabcfg.Config and serialized
// once. The other three are text/template files embedded in the binary
// (overridable through templates.dir).
package render

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"strings"
	"text/template"

	"github.com/aatumaykin/crabgen/internal/config"
	"github.com/aatumaykin/crabgen/internal/constants"
	"github.com/aatumaykin/crabgen/internal/crabcfg"
	"github.com/aatumaykin/crabgen/internal/manifest"
	"github.com/aatumaykin/crabgen/internal/naming"
)

// Artifact is one rendered file.
type Artifact struct {
	FileName string
	Content  string
	Mode     os.FileMode
}

// Data holds the values shared by all artifacts of one record.
type Data struct {
	ProcessName    string
	ProcessPath    string
	BaseOutputName string
	SkimList       string
	DriverFileName string
	PSet           config.PSetConfig
}

// Renderer renders artifacts from configuration and templates.
type Renderer struct {
	cfg       *config.Config
	templates *template.Template
}

// New creates a Renderer for cfg.
func New(cfg *config.Config) (*Renderer, error) {
	tmpl, err := loadTemplates(cfg.Templates.Dir)
	if err != nil {
		return nil, err
	}
	return &Renderer{cfg: cfg, templates: tmpl}, nil
}

// NewData derives the template data for a record.
func (r *Renderer) NewData(rec manifest.Record, outputRoot string) Data {
	return Data{
		ProcessName:    rec.Name,
		ProcessPath:    rec.Path,
		BaseOutputName: naming.BaseOutputName(outputRoot),
		SkimList:       r.SkimList(rec.Name),
		DriverFileName: constants.DriverFileName,
		PSet:           r.cfg.PSet,
	}
}

// IsData reports whether a process name refers to collision data.
func (r *Renderer) IsData(processName string) bool {
	return strings.Contains(processName, r.cfg.Skim.DataMarker)
}

// SkimList returns the branch selection list for a process.
func (r *Renderer) SkimList(processName string) string {
	if r.IsData(processName) {
		return r.cfg.Skim.DataList
	}
	return r.cfg.Skim.MCList
}

// LumiMasks returns the lumi-mask entries whose tag occurs in processName,
// in table order.
func (r *Renderer) LumiMasks(processName string) []config.LumiMask {
	var masks []config.LumiMask
	for _, m := range r.cfg.LumiMasks {
		if strings.Contains(processName, m.Tag) {
			masks = append(masks, m)
		}
	}
	return masks
}

// Render returns all four artifacts for rec, submission config first.
func (r *Renderer) Render(rec manifest.Record, outputRoot string) ([]Artifact, error) {
	d := r.NewData(rec, outputRoot)

	cfgText, err := r.SubmissionConfig(d)
	if err != nil {
		return nil, err
	}

	artifacts := []Artifact{
		{FileName: naming.ScriptName(rec.Name), Content: cfgText, Mode: 0644},
	}

	static := []struct {
		file string
		tmpl string
		mode os.FileMode
	}{
		{constants.DriverFileName, DriverTemplate, 0644},
		{constants.WrapperFileName, WrapperTemplate, 0755},
		{constants.PSetFileName, PSetTemplate, 0644},
	}
	for _, s := range static {
		content, err := r.execute(s.tmpl, d)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, Artifact{FileName: s.file, Content: content, Mode: s.mode})
	}

	return artifacts, nil
}

// SubmissionConfig builds and serializes the CRAB configuration.
func (r *Renderer) SubmissionConfig(d Data) (string, error) {
	c := r.cfg.Crab
	skimFile := path.Join(r.cfg.Skim.ListDir, d.SkimList+".txt")

	cfg := crabcfg.New()
	cfg.Section("General").
		Set("requestName", crabcfg.String(d.ProcessName)).
		Set("transferLogs", crabcfg.Bool(true))

	cfg.Section("JobType").
		Set("pluginName", crabcfg.String(c.PluginName)).
		Set("psetName", crabcfg.String(constants.PSetFileName)).
		Set("scriptExe", crabcfg.String(constants.WrapperFileName)).
		Set("inputFiles", crabcfg.List(constants.DriverFileName, skimFile))

	data := cfg.Section("Data").
		Set("inputDataset", crabcfg.String(d.ProcessPath)).
		Set("inputDBS", crabcfg.String(c.InputDBS)).
		Set("splitting", crabcfg.String(c.Splitting)).
		Set("unitsPerJob", crabcfg.Int(c.UnitsPerJob)).
		Set("outLFNDirBase", crabcfg.String(c.OutLFNDirBase+"/"+d.BaseOutputName+"/"+d.ProcessName)).
		Set("publication", crabcfg.Bool(false)).
		Set("outputDatasetTag", crabcfg.String(d.ProcessName))

	// Каждая маска встаёт сразу после inputDataset, поэтому при нескольких
	// совпадениях более поздний год оказывается выше
	for _, m := range r.LumiMasks(d.ProcessName) {
		if err := data.InsertAfter("inputDataset", "lumiMask", crabcfg.String(m.URL)); err != nil {
			return "", err
		}
	}

	cfg.Section("Site").
		Set("storageSite", crabcfg.Quoted(c.StorageSite))

	return cfg.Render(), nil
}

func (r *Renderer) execute(name string, d Data) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, d); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}
