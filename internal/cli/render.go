package cli

import (
	"fmt"
	"strings"

	"dessert-catalog/internal/core/recipe"
	"dessert-catalog/internal/pkg/common"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF8FAB")).
			Bold(true)
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)
)

// RenderSummaries 列表輸出，每行 "id  name"
func RenderSummaries(desserts []recipe.RecipeSummary) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("Desserts (%d)", len(desserts))))
	sb.WriteString("\n")
	for _, d := range desserts {
		sb.WriteString(fmt.Sprintf("%s  %s\n", labelStyle.Render(fmt.Sprintf("%-6s", d.ID)), d.Name))
	}
	return sb.String()
}

// RenderDetail 詳細資料輸出
func RenderDetail(d *recipe.RecipeDetail) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(d.Name))
	sb.WriteString("\n")

	writeField(&sb, "ID", d.ID)
	writeField(&sb, "Category", common.StringValue(d.Category))
	writeField(&sb, "Area", common.StringValue(d.Area))
	if len(d.Tags) > 0 {
		writeField(&sb, "Tags", strings.Join(d.Tags, ", "))
	}
	writeField(&sb, "Video", common.StringValue(d.VideoURL))
	writeField(&sb, "Source", common.StringValue(d.SourceImageURL))

	sb.WriteString("\n")
	sb.WriteString(titleStyle.Render(fmt.Sprintf("Ingredients (%d)", len(d.Ingredients))))
	sb.WriteString("\n")
	for _, ing := range d.Ingredients {
		sb.WriteString(fmt.Sprintf("  - %s %s\n", ing.Amount, ing.Name))
	}

	if instructions := common.StringValue(d.Instructions); instructions != "" {
		sb.WriteString("\n")
		sb.WriteString(titleStyle.Render("Instructions"))
		sb.WriteString("\n")
		sb.WriteString(strings.TrimSpace(instructions))
		sb.WriteString("\n")
	}

	return sb.String()
}

// writeField 空值不輸出
func writeField(sb *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	sb.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(label+":"), value))
}
