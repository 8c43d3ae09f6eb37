package promptSequence

import (
	"net"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/jobconf/domain/model/patch"
	"github.com/t-kuni/jobconf/util/path"
)

var (
	ErrInvalidPath   = eris.New("directory does not exist")
	ErrInvalidAnswer = eris.New("invalid answer")
)

// RFC 1123 host name
var hostnamePattern = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

type Validation string

const (
	// ValidationNone writes host and port answers as typed.
	ValidationNone Validation = "none"
	// ValidationStrict rejects malformed hosts and ports.
	ValidationStrict Validation = "strict"
)

func ParseValidation(value string) (Validation, error) {
	switch Validation(value) {
	case ValidationNone, ValidationStrict:
		return Validation(value), nil
	}
	return "", eris.Errorf("unknown validation mode: %s (want none or strict)", value)
}

type Question struct {
	State    State
	Prompt   string
	Complete bool
	// Normalize runs before Validate.
	Normalize func(answer string) string
	Validate  func(answer string) error
	Rule      patch.Rule
}

type FileRepository interface {
	Stat(path string) (os.FileInfo, error)
	Exists(path string) bool
}

// Questions returns the fixed question list for documents of the given syntax.
func Questions(syntax patch.Syntax, fileRepository FileRepository, validation Validation) []Question {
	questions := []Question{
		{
			State:     StateJobDirectory,
			Prompt:    "Job directory: ",
			Complete:  true,
			Normalize: path.Normalize,
			Validate: func(answer string) error {
				return validateDirectory(fileRepository, answer, validation)
			},
			Rule: syntax.Rule("", "exampleDirectory", patch.KindString),
		},
		{
			State:  StateBuilderHost,
			Prompt: "Builder hostname: ",
			Rule:   syntax.Rule("builder", "hostname", patch.KindString),
		},
		{
			State:  StateBuilderPort,
			Prompt: "Builder port: ",
			Rule:   syntax.Rule("builder", "port", patch.KindPort),
		},
		{
			State:  StateBrokerHost,
			Prompt: "MQTT hostname: ",
			Rule:   syntax.Rule("mqtt", "hostname", patch.KindString),
		},
	}

	if validation == ValidationStrict {
		questions[1].Validate = validateHost
		questions[2].Validate = validatePort
		questions[3].Validate = validateHost
	}
	return questions
}

func validateDirectory(fileRepository FileRepository, answer string, validation Validation) error {
	if validation != ValidationStrict {
		if !fileRepository.Exists(answer) {
			return eris.Wrapf(ErrInvalidPath, "%q", answer)
		}
		return nil
	}

	info, err := fileRepository.Stat(answer)
	if err != nil {
		return eris.Wrapf(ErrInvalidPath, "%q", answer)
	}
	if !info.IsDir() {
		return eris.Wrapf(ErrInvalidAnswer, "%q is not a directory", answer)
	}
	return nil
}

func validateHost(answer string) error {
	if answer == "" || strings.ContainsAny(answer, " \t") {
		return eris.Wrapf(ErrInvalidAnswer, "%q is not a host name", answer)
	}
	if net.ParseIP(answer) != nil || hostnamePattern.MatchString(answer) {
		return nil
	}
	return eris.Wrapf(ErrInvalidAnswer, "%q is not a host name", answer)
}

func validatePort(answer string) error {
	port, err := strconv.Atoi(answer)
	if err != nil || port < 1 || port > 65535 {
		return eris.Wrapf(ErrInvalidAnswer, "%q is not a port between 1 and 65535", answer)
	}
	return nil
}
