// Package report renders the fixed project report document. The content is
// static descriptive text about the system; it does not reflect live data.
package report

import (
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// FileName is the fixed name of the generated document.
const FileName = "School_Management_System_Report.pdf"

var features = []string{
	"Admin Authentication and Security",
	"Student Registration and Management",
	"Course Management",
	"Fee Tracking and Management",
	"Student Search Functionality",
	"Discount Management System",
	"Course-wise Student Grouping",
}

var techStack = [][2]string{
	{"Backend Framework", "Gin"},
	{"Database", "PostgreSQL"},
	{"Authentication", "JWT session tokens"},
	{"Password Hashing", "bcrypt"},
	{"Logging", "zerolog"},
	{"API Documentation", "Swagger"},
}

var courseCatalog = [][3]string{
	{"Course Name", "Duration", "Total Fees"},
	{"Bachelor of Technology", "4 years", "400,000"},
	{"Bachelor of Science", "3 years", "300,000"},
	{"Master of Technology", "2 years", "200,000"},
	{"Master of Science", "2 years", "180,000"},
	{"Bachelor of Commerce", "3 years", "250,000"},
	{"Bachelor of Arts", "3 years", "200,000"},
	{"Master of Business Administration", "2 years", "350,000"},
	{"Bachelor of Computer Applications", "3 years", "280,000"},
}

var securityFeatures = []string{
	"Password hashing using bcrypt",
	"Revocable server-side sessions",
	"Protected routes requiring authentication",
	"Request payload validation before any store access",
}

var futureEnhancements = []string{
	"Student attendance tracking system",
	"Online fee payment integration",
	"Parent portal access",
	"Student performance tracking",
	"Automated report generation",
	"Email notifications system",
}

// Generate writes the project report PDF into dir and returns the full path.
func Generate(dir string) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(25, 25, 25)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 12, "School Management System", "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 12, "Project Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 6, "Generated on: "+time.Now().Format("2006-01-02 15:04:05"), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(8)

	writeHeading(pdf, "Project Overview")
	writeParagraph(pdf, "The School Management System is a comprehensive web application designed to "+
		"streamline the management of student records, course information, and fee tracking in an "+
		"educational institution. The system provides a JSON API for administrators to manage "+
		"student data efficiently.")

	writeHeading(pdf, "Key Features")
	writeBullets(pdf, features)

	writeHeading(pdf, "Technical Stack")
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range techStack {
		pdf.CellFormat(55, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(100, 8, row[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	writeHeading(pdf, "Database Schema")
	writeParagraph(pdf, "The application uses three main database models: Admin manages administrator "+
		"authentication; Course stores course information including name, duration, and fees; Student "+
		"contains comprehensive student information including personal details and fee records.")

	writeHeading(pdf, "Available Courses")
	for i, row := range courseCatalog {
		if i == 0 {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.SetFillColor(200, 200, 200)
		} else {
			pdf.SetFont("Helvetica", "", 11)
			pdf.SetFillColor(245, 245, 220)
		}
		pdf.CellFormat(80, 8, row[0], "1", 0, "L", true, 0, "")
		pdf.CellFormat(35, 8, row[1], "1", 0, "C", true, 0, "")
		pdf.CellFormat(40, 8, row[2], "1", 1, "R", true, 0, "")
	}
	pdf.Ln(6)

	writeHeading(pdf, "Security Features")
	writeBullets(pdf, securityFeatures)

	writeHeading(pdf, "Future Enhancements")
	writeBullets(pdf, futureEnhancements)

	path := filepath.Join(dir, FileName)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}

func writeHeading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 9, text, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func writeParagraph(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, text, "", "L", false)
	pdf.Ln(5)
}

func writeBullets(pdf *gofpdf.Fpdf, items []string) {
	pdf.SetFont("Helvetica", "", 11)
	for _, item := range items {
		pdf.CellFormat(0, 6, "- "+item, "", 1, "L", false, 0, "")
	}
	pdf.Ln(5)
}
