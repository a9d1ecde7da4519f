package form

import (
	"encoding/json"
	"io"
	"os"

	"github.com/rotisserie/eris"

	"InvestorClassifier/internal/model"
)

// LoadFile reads a JSON investor profile. A path of "-" reads stdin.
func LoadFile(path string) (model.InvestorProfile, error) {
	if path == "-" {
		return Decode(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return model.InvestorProfile{}, eris.Wrapf(err, "form: open %s", path)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return p, eris.Wrapf(err, "form: load %s", path)
	}
	return p, nil
}

// Decode parses a JSON investor profile from r.
func Decode(r io.Reader) (model.InvestorProfile, error) {
	var p model.InvestorProfile
	data, err := io.ReadAll(r)
	if err != nil {
		return p, eris.Wrap(err, "form: read profile")
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, eris.Wrap(err, "form: parse profile")
	}
	return p, nil
}
