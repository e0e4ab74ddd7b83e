package instance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/birbparty/perch/sdk"
)

const (
	// ConfigPathEnv names the details file loaded by Default.
	ConfigPathEnv = "PERCH_INSTANCE_CONFIG"
	// DefaultConfigPath is used when ConfigPathEnv is unset.
	DefaultConfigPath = "Instance.toml"

	// URLEnv overrides the url key of the details file.
	URLEnv = "PERCH_INSTANCE_URL"
	// APIVersionEnv overrides the api_version key of the details file.
	APIVersionEnv = "PERCH_INSTANCE_API_VERSION"
)

// Details describes the Lemmy instance: where its API lives and how the
// frontends present it. It is the [instance] table of Instance.toml.
//
// Details implements sdk.BaseURLProvider.
type Details struct {
	Name             string `toml:"name" yaml:"name" json:"name"`
	Slogan           string `toml:"slogan" yaml:"slogan" json:"slogan"`
	URL              string `toml:"url" yaml:"url" json:"url" validate:"required,url"`
	APIVersion       string `toml:"api_version" yaml:"api_version" json:"api_version" validate:"required,startswith=v"`
	DonationURL      string `toml:"donation_url" yaml:"donation_url" json:"donation_url,omitempty" validate:"omitempty,url"`
	SourceCodeURL    string `toml:"source_code_url" yaml:"source_code_url" json:"source_code_url,omitempty" validate:"omitempty,url"`
	DocumentationURL string `toml:"documentation_url" yaml:"documentation_url" json:"documentation_url,omitempty" validate:"omitempty,url"`
	LogoName         string `toml:"logo_name" yaml:"logo_name" json:"logo_name,omitempty"`
	NoLogoText       bool   `toml:"no_logo_text" yaml:"no_logo_text" json:"no_logo_text"`
	LogoTextName     string `toml:"logo_text_name" yaml:"logo_text_name" json:"logo_text_name,omitempty"`
	LogoWidth        int32  `toml:"logo_width" yaml:"logo_width" json:"logo_width" validate:"gte=0"`
	LogoHeight       int32  `toml:"logo_height" yaml:"logo_height" json:"logo_height" validate:"gte=0"`
	FaviconName      string `toml:"favicon_name" yaml:"favicon_name" json:"favicon_name,omitempty"`

	// Schema is the [schema] table, kept beside the instance fields.
	Schema SchemaOverrides `toml:"-" yaml:"-" json:"-"`
}

// SchemaOverrides lists response fields whose declared optionality should
// be changed for this instance. Keys have the form "Type.field", e.g.
// "PostAggregates.hot_rank".
type SchemaOverrides struct {
	Optional  []string `toml:"optional" yaml:"optional"`
	Mandatory []string `toml:"mandatory" yaml:"mandatory"`
}

// document is the on-disk layout.
type document struct {
	Instance *Details       `toml:"instance" yaml:"instance"`
	Schema   SchemaOverrides `toml:"schema" yaml:"schema"`
}

// Format is a details file encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatFromPath picks the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, wrapErr(ErrUnsupportedFormat, fmt.Errorf("extension %q", filepath.Ext(path)))
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Parse decodes a details document without validating it.
func Parse(data []byte, format Format) (*Details, error) {
	var doc document
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, wrapErr(ErrUnsupportedFormat, fmt.Errorf("format %d", format))
	}
	if err != nil {
		return nil, wrapErr(ErrInvalidDetails, err)
	}
	if doc.Instance == nil {
		return nil, wrapErr(ErrInvalidDetails, errors.New("missing [instance] table"))
	}

	d := doc.Instance
	d.Schema = doc.Schema
	return d, nil
}

// Load reads a details file, applies the environment overrides and
// validates the result.
func Load(path string) (*Details, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, wrapErr(ErrDetailsNotFound, err)
		}
		return nil, fmt.Errorf("failed to read instance details: %w", err)
	}

	d, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	d.ApplyEnv(os.Getenv)

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

var (
	defaultOnce    sync.Once
	defaultDetails *Details
	defaultErr     error
)

// Default loads the details file named by PERCH_INSTANCE_CONFIG, or
// Instance.toml, the first time it is called and returns the same result
// afterwards. The returned Details must not be modified.
func Default() (*Details, error) {
	defaultOnce.Do(func() {
		path := os.Getenv(ConfigPathEnv)
		if path == "" {
			path = DefaultConfigPath
		}
		defaultDetails, defaultErr = Load(path)
	})
	return defaultDetails, defaultErr
}

// ApplyEnv overrides url and api_version from PERCH_INSTANCE_URL and
// PERCH_INSTANCE_API_VERSION when they are set.
func (d *Details) ApplyEnv(getenv func(string) string) {
	if v := getenv(URLEnv); v != "" {
		d.URL = v
	}
	if v := getenv(APIVersionEnv); v != "" {
		d.APIVersion = v
	}
}

// Validate checks the details and the schema override keys.
func (d *Details) Validate() error {
	if err := validate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
			}
			return wrapErr(ErrInvalidDetails, errors.New(strings.Join(msgs, "; ")))
		}
		return wrapErr(ErrInvalidDetails, err)
	}

	for _, key := range append(append([]string(nil), d.Schema.Optional...), d.Schema.Mandatory...) {
		if !sdk.KnownField(key) {
			return wrapErr(ErrInvalidSchemaEntry, fmt.Errorf("unknown field %q", key))
		}
	}
	return nil
}

// BaseURLAndVersion implements sdk.BaseURLProvider.
func (d *Details) BaseURLAndVersion() (string, string) {
	return d.URL, d.APIVersion
}

// FieldPolicy turns the [schema] table into a client field policy.
func (d *Details) FieldPolicy() (*sdk.FieldPolicy, error) {
	policy := sdk.NewFieldPolicy()
	for _, key := range d.Schema.Optional {
		if err := policy.Relax(key); err != nil {
			return nil, wrapErr(ErrInvalidSchemaEntry, err)
		}
	}
	for _, key := range d.Schema.Mandatory {
		if err := policy.Require(key); err != nil {
			return nil, wrapErr(ErrInvalidSchemaEntry, err)
		}
	}
	return policy, nil
}

// ClientConfig returns an sdk configuration pointed at this instance with
// its field policy applied.
func (d *Details) ClientConfig() (*sdk.Config, error) {
	policy, err := d.FieldPolicy()
	if err != nil {
		return nil, err
	}
	return sdk.DefaultConfig().WithInstance(d).WithFieldPolicy(policy), nil
}

// WithBase returns a copy of d pointed at another API location. Empty
// arguments keep the current value.
func (d *Details) WithBase(url, apiVersion string) *Details {
	clone := d.Clone()
	if url != "" {
		clone.URL = url
	}
	if apiVersion != "" {
		clone.APIVersion = apiVersion
	}
	return clone
}

// Clone creates a deep copy of the details
func (d *Details) Clone() *Details {
	clone := *d
	clone.Schema = SchemaOverrides{
		Optional:  append([]string(nil), d.Schema.Optional...),
		Mandatory: append([]string(nil), d.Schema.Mandatory...),
	}
	return &clone
}
