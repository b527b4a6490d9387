// Package ui provides shared styles and rendering helpers for the driver.
package ui

import "github.com/charmbracelet/lipgloss"

// Lipgloss Styles
var (
	RedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Bold(true)
	BlackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Bold(true)
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true)
	BoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)
