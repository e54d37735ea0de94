package model

// Package model defines domain data structures used across the app: Weblate
// projects, components, translation statistics, percent bands, and refresh job
// state. Structures are designed for direct binding in the UI and explicit
// state transitions.
