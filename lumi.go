// Package lumi provides a local gateway in front of a desktop file-search
// index and a local language model. It answers natural language file-search
// requests by classifying them into search-engine queries, forwards direct
// searches and questions, and extracts text from documents so they can be
// discussed with the model.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, ollama/, everything/).
package lumi
