// Package resumepdf renders a student profile into a clean single-column
// A4 resume. The layout is deliberately plain: black and gray text,
// thin rules between sections, no graphics.
package resumepdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adikale/placementhub/internal/app/models"
	"github.com/jung-kurt/gofpdf"
)

const margin = 18.0 // mm on every side

type palette struct {
	black, dark, text, muted, line [3]int
}

var colors = palette{
	black: [3]int{13, 13, 13},
	dark:  [3]int{26, 26, 26},
	text:  [3]int{44, 44, 44},
	muted: [3]int{85, 85, 85},
	line:  [3]int{204, 204, 204},
}

// Renderer writes resume PDFs into a base directory.
type Renderer struct {
	baseDir string
}

// NewRenderer creates a renderer that writes into baseDir, creating the
// directory if needed.
func NewRenderer(baseDir string) (*Renderer, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create resume directory: %w", err)
	}
	return &Renderer{baseDir: baseDir}, nil
}

// FilePath returns where a student's resume is stored.
func (r *Renderer) FilePath(studentID int64) string {
	return filepath.Join(r.baseDir, fmt.Sprintf("resume_%d.pdf", studentID))
}

// Render builds the resume PDF for a user and profile and returns the file
// path. An existing file for the same student is overwritten.
func (r *Renderer) Render(user *models.User, profile *models.StudentProfile) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	usable := pageWidth - 2*margin

	name := user.Name
	if name == "" {
		name = "Student Name"
	}

	// Header: name large, contact line under it
	pdf.SetFont("Helvetica", "B", 22)
	setColor(pdf, colors.black)
	pdf.CellFormat(usable, 10, name, "", 1, "L", false, 0, "")
	pdf.Ln(1)

	var contact []string
	if user.Email != "" {
		contact = append(contact, user.Email)
	}
	if profile.Phone != "" {
		contact = append(contact, profile.Phone)
	}
	if profile.LinkedIn != "" {
		contact = append(contact, profile.LinkedIn)
	}
	if len(contact) > 0 {
		pdf.SetFont("Helvetica", "", 9.5)
		setColor(pdf, colors.muted)
		pdf.CellFormat(usable, 5, strings.Join(contact, "   "), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)
	rule(pdf, usable, 0.8)
	pdf.Ln(3)

	// Summary
	section(pdf, usable, "SUMMARY")
	summary := "Computer Science undergraduate with strong programming and analytical skills. " +
		"Experienced in building academic and personal projects using modern tools and technologies."
	if profile.Branch != "" {
		summary = profile.Branch + " undergraduate with strong foundations in programming, " +
			"data analysis, and software development. Experienced in building " +
			"projects and applying analytical skills to solve real-world problems."
	}
	pdf.SetFont("Helvetica", "", 9.5)
	setColor(pdf, colors.text)
	pdf.MultiCell(usable, 5, summary, "", "J", false)
	pdf.Ln(4)

	// Projects
	if len(profile.Projects) > 0 {
		section(pdf, usable, "PROJECT")
		for _, project := range profile.Projects {
			if project.Name == "" {
				continue
			}
			pdf.SetFont("Helvetica", "B", 10)
			setColor(pdf, colors.dark)
			pdf.CellFormat(usable*0.70, 5, project.Name, "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
			setColor(pdf, colors.muted)
			pdf.CellFormat(usable*0.30, 5, "Academic Project", "", 1, "R", false, 0, "")

			if project.URL != "" {
				pdf.SetFont("Helvetica", "", 8.5)
				setColor(pdf, colors.muted)
				pdf.CellFormat(usable, 4, project.URL, "", 1, "L", false, 0, "")
			}
			if project.Desc != "" {
				pdf.SetFont("Helvetica", "", 9.5)
				setColor(pdf, colors.text)
				pdf.SetX(margin + 4)
				pdf.MultiCell(usable-4, 5, "- "+project.Desc, "", "L", false)
			}
			pdf.Ln(3)
		}
		pdf.Ln(1)
	}

	// Education
	section(pdf, usable, "EDUCATION")
	degree := "Bachelor's Programme"
	if profile.Branch != "" {
		degree = "Bachelor of Technology (B.Tech) - " + profile.Branch
	}
	pdf.SetFont("Helvetica", "B", 10)
	setColor(pdf, colors.dark)
	pdf.CellFormat(usable*0.72, 5, degree, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9.5)
	setColor(pdf, colors.muted)
	pdf.CellFormat(usable*0.28, 5, "2020 - 2024", "", 1, "R", false, 0, "")
	pdf.CellFormat(usable, 5, "University / College Name, India", "", 1, "L", false, 0, "")
	if profile.CGPA > 0 {
		setColor(pdf, colors.text)
		pdf.CellFormat(usable, 5, fmt.Sprintf("CGPA: %.2f / 10", profile.CGPA), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Certifications
	if len(profile.Certificates) > 0 {
		section(pdf, usable, "CERTIFICATIONS")
		for _, cert := range profile.Certificates {
			if cert.Title == "" {
				continue
			}
			pdf.SetFont("Helvetica", "B", 10)
			setColor(pdf, colors.dark)
			pdf.CellFormat(usable*0.80, 5, cert.Title, "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
			setColor(pdf, colors.muted)
			pdf.CellFormat(usable*0.20, 5, cert.Year, "", 1, "R", false, 0, "")
			pdf.SetFont("Helvetica", "", 9.5)
			pdf.CellFormat(usable, 4.5, cert.Issuer, "", 1, "L", false, 0, "")
			pdf.Ln(2)
		}
		pdf.Ln(1)
	}

	// Skills
	if len(profile.Skills) > 0 {
		section(pdf, usable, "SKILLS")
		pdf.SetFont("Helvetica", "", 9.5)
		setColor(pdf, colors.text)
		pdf.MultiCell(usable, 5, strings.Join(profile.Skills, " | "), "", "L", false)
		pdf.Ln(2)
	}

	// Declaration
	pdf.Ln(3)
	rule(pdf, usable, 0.5)
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 8)
	setColor(pdf, colors.muted)
	pdf.MultiCell(usable, 4,
		"I hereby declare that all information furnished above is true and correct to the best of my knowledge.",
		"", "L", false)
	pdf.Ln(3)
	third := usable / 3
	pdf.SetFont("Helvetica", "", 8.5)
	pdf.CellFormat(third, 4.5, "Place: _______________", "", 0, "L", false, 0, "")
	pdf.CellFormat(third, 4.5, "Date: _______________", "", 0, "C", false, 0, "")
	setColor(pdf, colors.dark)
	pdf.CellFormat(third, 4.5, "("+name+")", "", 1, "R", false, 0, "")

	path := r.FilePath(user.ID)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write resume pdf: %w", err)
	}

	return path, nil
}

func section(pdf *gofpdf.Fpdf, usable float64, title string) {
	pdf.SetFont("Helvetica", "B", 9)
	setColor(pdf, colors.black)
	pdf.CellFormat(usable, 5, title, "", 1, "L", false, 0, "")
	rule(pdf, usable, 0.7)
	pdf.Ln(2)
}

func rule(pdf *gofpdf.Fpdf, usable, thickness float64) {
	pdf.SetDrawColor(colors.line[0], colors.line[1], colors.line[2])
	pdf.SetLineWidth(thickness * 0.35) // pt to mm, roughly
	y := pdf.GetY()
	pdf.Line(margin, y, margin+usable, y)
}

func setColor(pdf *gofpdf.Fpdf, rgb [3]int) {
	pdf.SetTextColor(rgb[0], rgb[1], rgb[2])
}
