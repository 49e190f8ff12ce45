package azurepipelines

import (
	"fmt"
	"io"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"
)

const hostName = "azurepipelines"

// DetectionVariable is set by the Azure Pipelines agent on every job.
const DetectionVariable = "TF_BUILD"

var (
	dataEscaper = strings.NewReplacer(
		"%", "%AZP25",
		"\r", "%0D",
		"\n", "%0A",
	)
	propertyEscaper = strings.NewReplacer(
		"%", "%AZP25",
		"\r", "%0D",
		"\n", "%0A",
		";", "%3B",
		"]", "%5D",
	)
)

// AzurePipelinesHostRepository publishes results through ##vso logging commands.
type AzurePipelinesHostRepository struct {
	out io.Writer
}

// NewHostRepository creates a host writing logging commands to stdout.
func NewHostRepository() *AzurePipelinesHostRepository {
	return NewHostRepositoryWithWriter(os.Stdout)
}

// NewHostRepositoryWithWriter creates a host writing logging commands to out.
func NewHostRepositoryWithWriter(out io.Writer) *AzurePipelinesHostRepository {
	return &AzurePipelinesHostRepository{out: out}
}

func (r *AzurePipelinesHostRepository) Name() string { return hostName }

func (r *AzurePipelinesHostRepository) SetVariable(name, value string) error {
	logger.Debugf("[%s] setting output variable %s", hostName, name)
	return r.command(
		fmt.Sprintf("task.setvariable variable=%s;isOutput=true;issecret=false;", propertyEscaper.Replace(name)),
		value,
	)
}

func (r *AzurePipelinesHostRepository) UpdateBuildNumber(value string) error {
	logger.Infof("Updating build number to %s", value)
	return r.command("build.updatebuildnumber", value)
}

func (r *AzurePipelinesHostRepository) AddBuildTag(value string) error {
	logger.Infof("Adding build tag %s", value)
	return r.command("build.addbuildtag", value)
}

func (r *AzurePipelinesHostRepository) command(header, data string) error {
	if _, err := fmt.Fprintf(r.out, "##vso[%s]%s\n", header, dataEscaper.Replace(data)); err != nil {
		return fmt.Errorf("failed to write logging command: %w", err)
	}
	return nil
}
