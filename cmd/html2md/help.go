package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2md <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert HTML files or URLs to Markdown")
	fmt.Fprintln(w, "  watch      Convert, then re-convert when inputs change")
	fmt.Fprintln(w, "  doctor     Check the environment for --render-js support")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Inputs may also be given directly: html2md page.html")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'html2md help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2md convert <input>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert HTML files, directories, or URLs to Markdown.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    HTML file, directory, URL, or \"-\" for stdin")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <path>       Config file path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Fetching:")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Fetch and convert timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --render-js           Render pages with a headless browser")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Preview:")
	fmt.Fprintln(w, "      --preview             Write an HTML preview next to each markdown file")
	fmt.Fprintln(w, "      --preview-style <s>   Highlight style for previews (implies --preview)")
	fmt.Fprintln(w, "      --no-preview          Disable previews")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Watch:")
	fmt.Fprintln(w, "      --debounce <dur>      Delay before reconverting after a change")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printWatchUsage prints usage for the watch command.
func printWatchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2md watch <input>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert the inputs, then re-convert whenever they change.")
	fmt.Fprintln(w, "Watch mode accepts files and directories, not URLs or stdin.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Watch accepts every convert flag, plus:")
	fmt.Fprintln(w, "      --debounce <dur>      Delay before reconverting after a change")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Stop with Ctrl-C.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "watch":
		printWatchUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: html2md doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check whether a browser is available for --render-js and report")
		fmt.Fprintln(env.Stdout, "environment details that affect it.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: html2md version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: html2md help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
