package services

import (
	"bytes"
	"fmt"
	"strings"

	"personal-crm-backend/db/models"
	"personal-crm-backend/utils"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tags are stored lowercase; the export shows them title-cased.
var tagCaser = cases.Title(language.English)

var exportHeaders = []string{
	"First Name", "Last Name", "Email", "Phone", "Company", "Job Title", "Tags", "Created",
}

// ExportContactsXLSX renders all contacts into a single-sheet workbook
// and returns the encoded file bytes.
func ExportContactsXLSX(contacts []models.Contact) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Contacts"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, fmt.Errorf("error setting header %s: %w", header, err)
		}
	}

	for row, contact := range contacts {
		tagNames := make([]string, 0, len(contact.Tags))
		for _, tag := range contact.Tags {
			tagNames = append(tagNames, tagCaser.String(tag.Name))
		}

		values := []interface{}{
			contact.FirstName,
			contact.LastName,
			utils.DerefOr(contact.Email, ""),
			utils.DerefOr(contact.Phone, ""),
			utils.DerefOr(contact.Company, ""),
			utils.DerefOr(contact.JobTitle, ""),
			strings.Join(tagNames, ", "),
			contact.CreatedAt.Format("2006-01-02"),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("error writing row %d: %w", row+2, err)
			}
		}
	}

	return f.WriteToBuffer()
}
