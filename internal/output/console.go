package output

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))             // green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))             // red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))            // yellow
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))            // cyan
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")) // purple
)

func PrintSuccess(text string) {
	fmt.Println(successStyle.Render("[+] " + text))
}

func PrintError(text string) {
	fmt.Println(errorStyle.Render("[-] " + text))
}

func PrintWarning(text string) {
	fmt.Println(warningStyle.Render("[!] " + text))
}

func PrintInfo(text string) {
	fmt.Println(infoStyle.Render("[*] " + text))
}

func PrintHeader(text string) {
	fmt.Println(headerStyle.Render(text))
}

// PrintCourseTable renders discovered course URLs as a numbered table.
func PrintCourseTable(courses []string) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("#", "Course URL")
	for i, course := range courses {
		t.Row(strconv.Itoa(i+1), course)
	}
	fmt.Println(t.Render())
}
