// Package sheet writes specification rows to an Excel workbook and reads them
// back.
//
// Layout of the sheet:
//
//	rows 1-3   module header: key in column A, description in column B (bold)
//	row 4      column headers
//	row 5...   data rows, null fields are left as absent cells
package sheet
