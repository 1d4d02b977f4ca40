package rules

import (
	"fmt"
	"io/fs"
	"regexp"
	"strconv"
	"strings"

	"github.com/chazuruo/histlint/internal/history"
)

// minHistorySize is the retention floor below which the report nudges
// the user to keep more history.
const minHistorySize = 5000

// histappendOff matches `shopt` reporting histappend as disabled.
var histappendOff = regexp.MustCompile(`histappend[ \t]+off`)

// EnvironmentAdvice inspects shell history settings captured from the
// environment and returns configuration tips. It is a pure function of
// its arguments: the environment and shell option state are snapshotted
// by the caller, and the history file's permission bits are passed in
// rather than stat'ed here. shellOpts is the output of `shopt` (bash)
// or `setopt` (zsh); empty means the state could not be captured and
// the option checks are skipped.
func EnvironmentAdvice(shell string, env history.Env, looseMode fs.FileMode, histPath, shellOpts string) []Suggestion {
	var suggestions []Suggestion

	add := func(severity Severity, format string, args ...interface{}) {
		suggestions = append(suggestions, Suggestion{
			RuleID:   "environment",
			Severity: severity,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	if looseMode != 0 {
		add(SeverityWarning,
			"other users can read your history file; run \"chmod 600 %s\"", histPath)
	}

	if envInt(env, "HISTSIZE") < minHistorySize {
		add(SeverityInfo, "increase or set HISTSIZE to retain more history")
	}

	switch shell {
	case "bash", "sh":
		histFileSize := envInt(env, "HISTFILESIZE")
		if histFileSize < minHistorySize {
			add(SeverityInfo, "increase or set HISTFILESIZE to retain more history")
		}
		if histFileSize < envInt(env, "HISTSIZE") {
			add(SeverityInfo, "set HISTFILESIZE >= HISTSIZE so history survives shell exit")
		}
		histControl := env.Get("HISTCONTROL")
		if strings.Contains(histControl, "ignoredups") || strings.Contains(histControl, "erasedups") {
			add(SeverityInfo, "remove \"ignoredups\"/\"erasedups\" from HISTCONTROL to retain more history")
		}
		if histappendOff.MatchString(shellOpts) {
			add(SeverityInfo, "run \"shopt -s histappend\" to retain more history")
		}
	case "zsh":
		saveHist := envInt(env, "SAVEHIST")
		if saveHist < minHistorySize {
			add(SeverityInfo, "increase or set SAVEHIST to retain more history")
		}
		if saveHist < envInt(env, "HISTSIZE") {
			add(SeverityInfo, "set SAVEHIST >= HISTSIZE so history survives shell exit")
		}
		if strings.Contains(shellOpts, "noappendhistory") {
			add(SeverityInfo, "run \"setopt appendhistory\" to retain more history")
		}
		if strings.Contains(shellOpts, "histignorealldups") {
			add(SeverityInfo, "run \"unsetopt histignorealldups\" to retain more history")
		}
	}

	return suggestions
}

// HistIgnoreSet parses $HISTIGNORE (colon-separated) into a lookup set
// of whitespace-normalized commands.
func HistIgnoreSet(env history.Env) map[string]bool {
	set := make(map[string]bool)
	for _, entry := range strings.Split(env.Get("HISTIGNORE"), ":") {
		entry = standardize(entry)
		if entry != "" {
			set[entry] = true
		}
	}
	return set
}

func envInt(env history.Env, key string) int {
	n, err := strconv.Atoi(env.Get(key))
	if err != nil {
		return 0
	}
	return n
}
