package style

// CSSTemplate is a ready-made custom stylesheet offered in the editor.
type CSSTemplate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CSS         string `json:"css"`
}

var cssTemplates = []CSSTemplate{
	{
		Name:        "Glassmorphism",
		Description: "Frosted glass effect",
		CSS: `.custom-glass {
  background: rgba(255, 255, 255, 0.25);
  box-shadow: 0 8px 32px 0 rgba(31, 38, 135, 0.37);
  backdrop-filter: blur(4px);
  -webkit-backdrop-filter: blur(4px);
  border-radius: 10px;
  border: 1px solid rgba(255, 255, 255, 0.18);
}`,
	},
	{
		Name:        "Neon Glow",
		Description: "Cyberpunk neon effect",
		CSS: `.custom-neon {
  color: #fff;
  text-shadow: 0 0 5px #fff, 0 0 10px #fff, 0 0 15px #0073e6, 0 0 20px #0073e6;
  box-shadow: 0 0 5px #fff, 0 0 10px #fff, 0 0 15px #0073e6, 0 0 20px #0073e6;
  animation: flicker 1.5s infinite alternate;
}

@keyframes flicker {
  0%, 100% { opacity: 1; }
  50% { opacity: 0.8; }
}`,
	},
	{
		Name:        "Gradient Border",
		Description: "Animated gradient borders",
		CSS: `.custom-gradient-border {
  position: relative;
  background: linear-gradient(45deg, #ff006e, #fb5607, #ffbe0b, #8338ec);
  padding: 3px;
  border-radius: 15px;
  animation: gradient-rotate 3s linear infinite;
}

@keyframes gradient-rotate {
  0% { transform: rotate(0deg); }
  100% { transform: rotate(360deg); }
}`,
	},
	{
		Name:        "Floating Animation",
		Description: "Gentle floating motion",
		CSS: `.custom-float {
  animation: float 6s ease-in-out infinite;
}

@keyframes float {
  0% { transform: translateY(0px); }
  50% { transform: translateY(-20px); }
  100% { transform: translateY(0px); }
}

.custom-float:hover {
  animation-play-state: paused;
  transform: translateY(-10px) scale(1.05);
  transition: transform 0.3s ease;
}`,
	},
	{
		Name:        "Morphing Shapes",
		Description: "Organic shape morphing",
		CSS: `.custom-morph {
  position: relative;
  overflow: hidden;
}

.custom-morph::before {
  content: '';
  position: absolute;
  top: -50%;
  left: -50%;
  width: 200%;
  height: 200%;
  background: linear-gradient(45deg, #667eea 0%, #764ba2 100%);
  border-radius: 50%;
  animation: morph 20s ease-in-out infinite;
  opacity: 0.1;
}

@keyframes morph {
  0%, 100% { border-radius: 50%; transform: rotate(0deg); }
  50% { border-radius: 30% 70% 70% 30% / 30% 30% 70% 70%; transform: rotate(180deg); }
}`,
	},
	{
		Name:        "Text Effects",
		Description: "Gradient and shadowed text",
		CSS: `.custom-text-gradient {
  background: linear-gradient(45deg, #667eea, #764ba2, #f093fb);
  background-size: 300% 300%;
  -webkit-background-clip: text;
  -webkit-text-fill-color: transparent;
}

.custom-text-shadow {
  text-shadow: 2px 2px 0 #667eea, 4px 4px 0 #764ba2;
}`,
	},
}

// CSSTemplates lists the ready-made stylesheets.
func CSSTemplates() []CSSTemplate {
	out := make([]CSSTemplate, len(cssTemplates))
	copy(out, cssTemplates)
	return out
}
