// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	LaunchfileNotFoundId Id = iota + 1
	LaunchfileParseErrorId
	TargetNotFoundId
	ConfigLoadFailedId
	ResourceFileUnreadableId
	InvalidPolicyId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

// Issue is a known failure condition with rendered, user-facing guidance.
type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation links shown under "See also"
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	launchfileNotFoundIssue = &Issue{
		id: LaunchfileNotFoundId,
		mdMsg: `
# No launchfile found!

We searched for a launchfile but couldn't find one in the expected locations.

## Search locations (in order of precedence):
1. The --gty-launchfile flag value
2. launchfile.cue in the current directory
3. The default profile configured in your gantry config

## Things you can try:
- Create a starter launchfile in your current directory:
~~~
$ gantry init
~~~

- Or point gantry at an existing one:
~~~
$ gantry run --gty-launchfile /path/to/tool.cue
~~~`,
	}

	launchfileParseErrorIssue = &Issue{
		id: LaunchfileParseErrorId,
		mdMsg: `
# Failed to parse launchfile!

Your launchfile contains syntax errors or invalid declarations.

## Common issues:
- Invalid CUE syntax (missing quotes, braces, etc.)
- Unknown field names
- Invalid tier names (valid: "argument", "environment", "rcfile", "default")
- Duplicate setting keys, flag names, or env names

## Things you can try:
- Check the error message above for the specific field path
- See the format reference:
~~~
$ gantry docs
~~~

## Example of a valid setting declaration:
~~~cue
settings: [
  {
    key:     "TOOL_ROOT"
    default: "/opt/tool"
    tiers: ["argument", "environment", "rcfile"]
  },
]
~~~`,
	}

	targetNotFoundIssue = &Issue{
		id: TargetNotFoundId,
		mdMsg: `
# Target executable not found!

The launchfile's target resolved to a path that does not exist or is not
executable.

## Things you can try:
- Inspect the resolved settings feeding the target template:
~~~
$ gantry describe
~~~

- Override the relevant setting on the command line, e.g.:
~~~
$ gantry run --tool-root /opt/tool
~~~

- Check the target template in your launchfile for typos`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your gantry config file exists but could not be loaded.

## Things you can try:
- Check the CUE syntax of your config file:
~~~
$ gantry config path
~~~

- Recreate the default configuration:
~~~
$ gantry config init
~~~`,
	}

	resourceFileUnreadableIssue = &Issue{
		id: ResourceFileUnreadableId,
		mdMsg: `
# Resource file could not be read!

A resource file was found but reading it failed. Note that a *missing*
resource file is never an error; this means the file exists but is
unreadable (permissions, broken symlink).

## Things you can try:
- Check the file's permissions
- Skip the resource-file tier for this run:
~~~
$ gantry run --gty-no-rc
~~~`,
	}

	invalidPolicyIssue = &Issue{
		id: InvalidPolicyId,
		mdMsg: `
# Invalid settings policy!

The launchfile's setting declarations do not form a valid resolution
policy, so no resolution was attempted.

## Common causes:
- The "default" tier listed before other tiers (it must be last:
  anything after it could never win)
- Duplicate setting keys
- A declared key with no default

## Things you can try:
- Check the error message above for the offending keys
- See the format reference:
~~~
$ gantry docs
~~~`,
	}

	issues = map[Id]*Issue{
		launchfileNotFoundIssue.Id():     launchfileNotFoundIssue,
		launchfileParseErrorIssue.Id():   launchfileParseErrorIssue,
		targetNotFoundIssue.Id():         targetNotFoundIssue,
		configLoadFailedIssue.Id():       configLoadFailedIssue,
		resourceFileUnreadableIssue.Id(): resourceFileUnreadableIssue,
		invalidPolicyIssue.Id():          invalidPolicyIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
