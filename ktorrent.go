// Package ktorrent provides HTML scraping helpers for Korean torrent
// bulletin-board sites. Given a parsed page and a rule naming
// class names, tag names and attribute names, it extracts magnet URIs,
// post titles and bulletin-board post URLs.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package ktorrent
