package controller

// HistoryPreviewLen exposes historyPreviewLen to the external test package.
const HistoryPreviewLen = historyPreviewLen
