package vnstat

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"bwgraph/internal/traffic"
	"bwgraph/pkg/log"
)

// CommandSource runs the vnstat binary and decodes its JSON output.
type CommandSource struct {
	Binary    string
	Interface string
	Timeout   time.Duration
	logger    *logrus.Entry
}

func NewCommandSource(binary, iface string, timeout time.Duration, logger *logrus.Entry) *CommandSource {
	if binary == "" {
		binary = "vnstat"
	}
	if logger == nil {
		logger = log.NewLogger()
	}
	return &CommandSource{
		Binary:    binary,
		Interface: iface,
		Timeout:   timeout,
		logger:    logger.WithField("component", "vnstat"),
	}
}

func (s *CommandSource) Name() string {
	return "command"
}

func (s *CommandSource) Scope() string {
	return "command:" + s.Interface
}

// Args returns the vnstat arguments for q, e.g. --json d 7.
func (s *CommandSource) Args(q Query) []string {
	args := []string{"--json", q.Granularity.Short(), strconv.Itoa(q.Count)}
	if s.Interface != "" {
		args = append(args, "-i", s.Interface)
	}
	return args
}

func (s *CommandSource) Fetch(ctx context.Context, q Query) (*traffic.Document, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	args := s.Args(q)
	s.logger.Debugf("exec %s %s", s.Binary, strings.Join(args, " "))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.Binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("run %s: %w: %s", s.Binary, err, strings.TrimSpace(stderr.String()))
	}

	return Decode(&stdout)
}
