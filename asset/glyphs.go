package asset

// DefaultGlyphs is the built-in glyph container used when no -glyphs document is given
// Each child <svg> is one dot, drawn in a 128x128 box centered on (64,64)
const DefaultGlyphs = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" id="svg-container">
  <svg id="ring" viewBox="0 0 128 128">
    <g fill="#e63946">
      <path d="M64 8A56 56 0 1 1 63.9 8Z M64 28A36 36 0 1 0 64.1 28Z"/>
    </g>
  </svg>
  <svg id="tile" viewBox="0 0 128 128">
    <path fill="#457b9d" d="M16 16H112V112H16Z"/>
    <circle fill="#f1faee" cx="64" cy="64" r="20"/>
  </svg>
  <svg id="delta" viewBox="0 0 128 128">
    <path fill="#2a9d8f" d="M64 10L118 112H10Z"/>
  </svg>
  <svg id="star" viewBox="0 0 128 128">
    <polygon fill="#e9c46a" points="64,6 79,46 122,46 87,72 100,114 64,88 28,114 41,72 6,46 49,46"/>
  </svg>
  <svg id="heart" viewBox="0 0 128 128">
    <path fill="#d62828" d="M64 112C20 80 6 56 20 32C32 12 56 16 64 36C72 16 96 12 108 32C122 56 108 80 64 112Z"/>
  </svg>
  <svg id="cross" viewBox="0 0 128 128">
    <path fill="#3a86ff" d="M48 12h32v36h36v32h-36v36h-32v-36h-36v-32h36z"/>
  </svg>
  <svg id="diamond" viewBox="0 0 128 128">
    <g fill="#8338ec">
      <path d="M64 6L122 64L64 122L6 64Z"/>
      <path fill="#ffbe0b" d="M64 40L88 64L64 88L40 64Z"/>
    </g>
  </svg>
  <svg id="crescent" viewBox="0 0 128 128">
    <path fill="#fb8500" d="M80 10A56 56 0 1 0 80 118A44 44 0 1 1 80 10Z"/>
  </svg>
  <svg id="hexagon" viewBox="0 0 128 128">
    <polygon fill="#06d6a0" points="64,6 114,35 114,93 64,122 14,93 14,35"/>
  </svg>
  <svg id="drop" viewBox="0 0 128 128">
    <path fill="#118ab2" d="M64 6Q112 70 96 96Q80 122 64 122Q48 122 32 96Q16 70 64 6Z"/>
  </svg>
  <svg id="chevron" viewBox="0 0 128 128">
    <path fill="#073b4c" d="M16 40L64 88L112 40L112 72L64 120L16 72Z"/>
  </svg>
  <svg id="eye" viewBox="0 0 128 128">
    <g fill="#264653">
      <ellipse cx="64" cy="64" rx="58" ry="34"/>
      <circle fill="#e9c46a" cx="64" cy="64" r="22"/>
      <circle cx="64" cy="64" r="9"/>
    </g>
  </svg>
  <svg id="bolt" viewBox="0 0 128 128">
    <path fill="#ffb703" d="M72 4L24 72H60L52 124L104 52H68Z"/>
  </svg>
  <svg id="bloom" viewBox="0 0 128 128">
    <path fill="#ff006e" d="M64 20Q84 0 92 36T108 64T92 92T64 108T36 92T20 64T36 36T64 20Z"/>
  </svg>
  <svg id="swirl" viewBox="0 0 128 128">
    <path fill="#6a4c93" d="M96 24C80 8 32 8 32 40S96 72 96 96S48 128 28 104L40 94C52 110 80 108 80 96S16 72 16 40S72 -4 106 16Z"/>
  </svg>
  <svg id="quad" viewBox="0 0 128 128">
    <rect fill="#ef476f" x="12" y="12" width="48" height="48"/>
    <rect fill="#ffd166" x="68" y="12" width="48" height="48"/>
    <rect fill="#06d6a0" x="12" y="68" width="48" height="48"/>
    <rect fill="#118ab2" x="68" y="68" width="48" height="48"/>
  </svg>
</svg>
`
