package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arcanaland/arachne/internal/config"
	"github.com/arcanaland/arachne/internal/deck"
	colorize "github.com/fatih/color"
	"github.com/stretchr/testify/suite"
)

type CmdTestSuite struct {
	suite.Suite
	noColor bool
}

func TestCmdSuite(t *testing.T) {
	suite.Run(t, new(CmdTestSuite))
}

func (s *CmdTestSuite) SetupSuite() {
	s.noColor = colorize.NoColor
	colorize.NoColor = true
}

func (s *CmdTestSuite) TearDownSuite() {
	colorize.NoColor = s.noColor
}

func (s *CmdTestSuite) SetupTest() {
	s.T().Setenv("XDG_CONFIG_HOME", s.T().TempDir())
	s.T().Setenv(config.EnvVariant, "")
	s.T().Setenv(config.EnvLogLevel, "")

	// Flag values outlive a single Execute
	s.Require().NoError(deckBuildCmd.Flags().Set("variant", ""))
	s.Require().NoError(deckBuildCmd.Flags().Set("faces", "false"))
	s.Require().NoError(moveDropCmd.Flags().Set("onto", ""))
}

func (s *CmdTestSuite) execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	RootCmd.SetOut(buf)
	RootCmd.SetErr(io.Discard)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return buf.String(), err
}

func (s *CmdTestSuite) TestDeckBuild() {
	out, err := s.execute("deck", "build", "--variant", "one-suit")

	s.Require().NoError(err)
	s.Contains(out, "one-suit deck, 104 cards")
	s.Contains(out, "A♣ 2♣ 3♣")
	s.NotContains(out, "♥")
}

func (s *CmdTestSuite) TestDeckBuildDefaultVariant() {
	out, err := s.execute("deck", "build")

	s.Require().NoError(err)
	s.Contains(out, "two-suit deck, 104 cards")
	s.Contains(out, "K♥")
}

func (s *CmdTestSuite) TestDeckBuildFaces() {
	out, err := s.execute("deck", "build", "--variant", "four-suit", "--faces")

	s.Require().NoError(err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	s.Require().Len(lines, 104)
	s.True(strings.HasPrefix(lines[0], "AC\t"))
	s.True(strings.HasSuffix(lines[0], "cards/A-Clubs.svg"))
	s.True(strings.HasSuffix(lines[103], "cards/K-Spades.svg"))
}

func (s *CmdTestSuite) TestDeckBuildInvalidVariant() {
	_, err := s.execute("deck", "build", "--variant", "bogus-mode")

	s.ErrorIs(err, deck.ErrInvalidVariant)
}

func (s *CmdTestSuite) TestDeckVariantsAndSetDefault() {
	out, err := s.execute("deck", "variants")
	s.Require().NoError(err)
	s.Contains(out, "* two-suit")
	s.Contains(out, "Clubs, Hearts × 4 (104 cards)")

	out, err = s.execute("deck", "set-default", "four-suit")
	s.Require().NoError(err)
	s.Contains(out, "Default variant set to: four-suit")

	out, err = s.execute("deck", "variants")
	s.Require().NoError(err)
	s.Contains(out, "* four-suit")

	_, err = s.execute("deck", "set-default", "bogus-mode")
	s.ErrorIs(err, deck.ErrInvalidVariant)
}

func (s *CmdTestSuite) TestMoveLift() {
	out, err := s.execute("move", "lift", "7C", "6C", "5C")
	s.Require().NoError(err)
	s.Contains(out, "can be lifted")

	out, err = s.execute("move", "lift", "7C", "6D", "5C")
	s.ErrorIs(err, ErrIllegalMove)
	s.Contains(out, "cannot be lifted")

	out, err = s.execute("move", "lift", "7C", "6C", "_5C")
	s.ErrorIs(err, ErrIllegalMove)
	s.Contains(out, "[5♣]")

	_, err = s.execute("move", "lift", "7X")
	s.Error(err)
	s.NotErrorIs(err, ErrIllegalMove)
}

func (s *CmdTestSuite) TestMoveDrop() {
	out, err := s.execute("move", "drop", "--onto", "8C", "7H", "6H")
	s.Require().NoError(err)
	s.Contains(out, "can be dropped on 8♣")

	out, err = s.execute("move", "drop", "--onto", "_8C", "7H")
	s.ErrorIs(err, ErrIllegalMove)
	s.Contains(out, "cannot be dropped on [8♣]")

	s.Require().NoError(moveDropCmd.Flags().Set("onto", ""))
	out, err = s.execute("move", "drop", "3D")
	s.Require().NoError(err)
	s.Contains(out, "can be dropped on an empty pile")
}

func (s *CmdTestSuite) TestMoveHint() {
	out, err := s.execute("move", "hint", "_KS", "9H", "8C", "7C")
	s.Require().NoError(err)
	s.Contains(out, "2 card(s) can be lifted: [8♣ 7♣]")

	out, err = s.execute("move", "hint", "9H", "_8C")
	s.Require().NoError(err)
	s.Contains(out, "Nothing can be lifted")
}

func (s *CmdTestSuite) TestShow() {
	out, err := s.execute("show", "QH", "_10S")

	s.Require().NoError(err)
	s.Contains(out, "Face: cards/Q-Hearts.svg")
	s.Contains(out, "Card: Q of Hearts")
	s.Contains(out, "10 of Spades (face-down)")
}

func (s *CmdTestSuite) TestValidate() {
	path := filepath.Join(s.T().TempDir(), "layout.toml")
	content := "variant = \"one-suit\"\nfoundations = 1\n"
	s.Require().NoError(os.WriteFile(path, []byte(content), 0644))

	_, err := s.execute("validate", path)
	s.ErrorContains(err, "unknown keys")

	content = "variant = \"two-suit\"\nstock = [\"5S\"]\n"
	s.Require().NoError(os.WriteFile(path, []byte(content), 0644))

	out, err := s.execute("validate", path)
	s.Error(err)
	s.Contains(out, "Spades is not part of a two-suit deck")

	_, err = s.execute("validate", filepath.Join(s.T().TempDir(), "missing.toml"))
	s.ErrorContains(err, "layout file not found")
}
