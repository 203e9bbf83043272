package cli

// Export for testing
const TimeDisplayFormat = timeDisplayFormat
