package gradeforge

import (
	"net/url"
	"strings"
)

// DefaultBaseURL is the origin of the registration portal.
const DefaultBaseURL = "https://ssb.onecarolina.sc.edu"

// AbsoluteLink rewrites site-relative links ("/BANP/...") against base.
// Other links are returned unchanged.
func AbsoluteLink(base, href string) string {
	href = strings.TrimSpace(href)
	if strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "//") {
		return strings.TrimSuffix(base, "/") + href
	}
	return href
}

// CatalogLink returns the catalog detail page of a course.
func CatalogLink(base, semester, department, code string) string {
	q := url.Values{}
	q.Set("cat_term_in", semester)
	q.Set("subj_code_in", department)
	q.Set("crse_numb_in", code)
	return base + "/BANP/bwckctlg.p_disp_course_detail?" + q.Encode()
}

// SectionLink returns the detail page of a section.
func SectionLink(base, semester, uid string) string {
	q := url.Values{}
	q.Set("term_in", semester)
	q.Set("crn_in", uid)
	return base + "/BANP/bwckschd.p_disp_detail_sched?" + q.Encode()
}

// BookstoreLink returns the bookstore page of a section.
// Section labels are zero-padded to three digits.
func BookstoreLink(base, semester, department, code, section string) string {
	if len(section) < 3 {
		section = strings.Repeat("0", 3-len(section)) + section
	}
	q := url.Values{}
	q.Set("p_term_in", semester)
	q.Set("p_subj_in", department)
	q.Set("p_crse_numb_in", code)
	q.Set("p_seq_in", section)
	return base + "/BANP/bwckbook.site?" + q.Encode()
}
