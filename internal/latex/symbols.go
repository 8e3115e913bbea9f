package latex

// CombiningType 组合字符的作用位置
type CombiningType int

const (
	FirstChar CombiningType = iota
	LastChar
	AllChars
)

// CombiningSample 组合字符及其作用位置
type CombiningSample struct {
	Char rune
	Type CombiningType
}

// LatexSymbols 命令到 Unicode 的直接映射
var LatexSymbols = map[string]string{
	// 希腊字母
	`\alpha`: "α", `\beta`: "β", `\gamma`: "γ", `\delta`: "δ", `\epsilon`: "ϵ",
	`\varepsilon`: "ε", `\zeta`: "ζ", `\eta`: "η", `\theta`: "θ", `\vartheta`: "ϑ",
	`\iota`: "ι", `\kappa`: "κ", `\lambda`: "λ", `\mu`: "μ", `\nu`: "ν", `\xi`: "ξ",
	`\pi`: "π", `\varpi`: "ϖ", `\rho`: "ρ", `\varrho`: "ϱ", `\sigma`: "σ",
	`\varsigma`: "ς", `\tau`: "τ", `\upsilon`: "υ", `\phi`: "ϕ", `\varphi`: "φ",
	`\chi`: "χ", `\psi`: "ψ", `\omega`: "ω",
	`\Gamma`: "Γ", `\Delta`: "Δ", `\Theta`: "Θ", `\Lambda`: "Λ", `\Xi`: "Ξ",
	`\Pi`: "Π", `\Sigma`: "Σ", `\Upsilon`: "Υ", `\Phi`: "Φ", `\Psi`: "Ψ", `\Omega`: "Ω",

	// 运算符
	`\times`: "×", `\div`: "÷", `\pm`: "±", `\mp`: "∓", `\cdot`: "⋅", `\ast`: "∗",
	`\star`: "⋆", `\circ`: "∘", `\bullet`: "∙", `\oplus`: "⊕", `\otimes`: "⊗",
	`\cap`: "∩", `\cup`: "∪", `\wedge`: "∧", `\land`: "∧", `\vee`: "∨", `\lor`: "∨",
	`\setminus`: "∖", `\neg`: "¬", `\lnot`: "¬",
	`\sum`: "∑", `\prod`: "∏", `\coprod`: "∐", `\int`: "∫", `\iint`: "∬",
	`\iiint`: "∭", `\oint`: "∮", `\bigcup`: "⋃", `\bigcap`: "⋂",
	`\partial`: "∂", `\nabla`: "∇", `\infty`: "∞", `\prime`: "′",

	// 关系
	`\leq`: "≤", `\le`: "≤", `\geq`: "≥", `\ge`: "≥", `\neq`: "≠", `\ne`: "≠",
	`\approx`: "≈", `\equiv`: "≡", `\sim`: "∼", `\simeq`: "≃", `\cong`: "≅",
	`\propto`: "∝", `\ll`: "≪", `\gg`: "≫", `\in`: "∈", `\notin`: "∉", `\ni`: "∋",
	`\subset`: "⊂", `\supset`: "⊃", `\subseteq`: "⊆", `\supseteq`: "⊇",
	`\perp`: "⊥", `\parallel`: "∥", `\mid`: "∣", `\models`: "⊨", `\vdash`: "⊢",

	// 箭头
	`\to`: "→", `\rightarrow`: "→", `\leftarrow`: "←", `\gets`: "←",
	`\leftrightarrow`: "↔", `\Rightarrow`: "⇒", `\Leftarrow`: "⇐",
	`\Leftrightarrow`: "⇔", `\iff`: "⇔", `\implies`: "⟹", `\mapsto`: "↦",
	`\uparrow`: "↑", `\downarrow`: "↓", `\longrightarrow`: "⟶", `\longleftarrow`: "⟵",

	// 集合与逻辑
	`\forall`: "∀", `\exists`: "∃", `\nexists`: "∄", `\emptyset`: "∅",
	`\varnothing`: "∅", `\aleph`: "ℵ", `\hbar`: "ℏ", `\ell`: "ℓ", `\Re`: "ℜ", `\Im`: "ℑ",

	// 定界符与标点
	`\langle`: "⟨", `\rangle`: "⟩", `\lceil`: "⌈", `\rceil`: "⌉", `\lfloor`: "⌊",
	`\rfloor`: "⌋", `\{`: "{", `\}`: "}", `\|`: "‖", `\lvert`: "|", `\rvert`: "|",
	`\ldots`: "…", `\cdots`: "⋯", `\vdots`: "⋮", `\ddots`: "⋱", `\dots`: "…",
	`\angle`: "∠", `\triangle`: "△", `\degree`: "°", `\%`: "%", `\$`: "$", `\&`: "&",
	`\_`: "_", `\#`: "#",

	// 空白
	`\,`: " ", `\;`: " ", `\:`: " ", `\!`: "", `\quad`: "  ", `\qquad`: "    ", `\ `: " ",
	`\\`: "\n",

	// 函数名
	`\sin`: "sin", `\cos`: "cos", `\tan`: "tan", `\cot`: "cot", `\sec`: "sec",
	`\csc`: "csc", `\arcsin`: "arcsin", `\arccos`: "arccos", `\arctan`: "arctan",
	`\sinh`: "sinh", `\cosh`: "cosh", `\tanh`: "tanh", `\log`: "log", `\ln`: "ln",
	`\exp`: "exp", `\lim`: "lim", `\max`: "max", `\min`: "min", `\sup`: "sup",
	`\inf`: "inf", `\det`: "det", `\gcd`: "gcd", `\deg`: "deg", `\dim`: "dim",
	`\ker`: "ker", `\arg`: "arg", `\mod`: "mod",

	// 忽略的尺寸命令
	`\displaystyle`: "", `\textstyle`: "", `\limits`: "", `\nolimits`: "",
	`\big`: "", `\Big`: "", `\bigg`: "", `\Bigg`: "",
}

// NotMap \not 前缀的专用否定符号
var NotMap = map[string]string{
	"=": "≠", "<": "≮", ">": "≯", "∈": "∉", "≡": "≢", "∼": "≁", "≈": "≉",
	"⊂": "⊄", "⊃": "⊅", "⊆": "⊈", "⊇": "⊉", "≤": "≰", "≥": "≱", "∃": "∄",
}

// Combining 重音类命令
var Combining = map[string]CombiningSample{
	`\hat`:       {'\u0302', FirstChar},
	`\widehat`:   {'\u0302', FirstChar},
	`\bar`:       {'\u0304', FirstChar},
	`\overline`:  {'\u0305', AllChars},
	`\underline`: {'\u0332', AllChars},
	`\tilde`:     {'\u0303', FirstChar},
	`\widetilde`: {'\u0303', FirstChar},
	`\vec`:       {'\u20D7', FirstChar},
	`\dot`:       {'\u0307', FirstChar},
	`\ddot`:      {'\u0308', FirstChar},
	`\acute`:     {'\u0301', FirstChar},
	`\grave`:     {'\u0300', FirstChar},
	`\check`:     {'\u030C', FirstChar},
	`\breve`:     {'\u0306', FirstChar},
}

// Subscripts 可用 Unicode 表示的下标字符
var Subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄', '5': '₅', '6': '₆', '7': '₇',
	'8': '₈', '9': '₉', '+': '₊', '-': '₋', '=': '₌', '(': '₍', ')': '₎',
	'a': 'ₐ', 'e': 'ₑ', 'h': 'ₕ', 'i': 'ᵢ', 'j': 'ⱼ', 'k': 'ₖ', 'l': 'ₗ', 'm': 'ₘ',
	'n': 'ₙ', 'o': 'ₒ', 'p': 'ₚ', 'r': 'ᵣ', 's': 'ₛ', 't': 'ₜ', 'u': 'ᵤ', 'v': 'ᵥ',
	'x': 'ₓ', 'β': 'ᵦ', 'γ': 'ᵧ', 'ρ': 'ᵨ', 'φ': 'ᵩ', 'χ': 'ᵪ',
}

// Superscripts 可用 Unicode 表示的上标字符
var Superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴', '5': '⁵', '6': '⁶', '7': '⁷',
	'8': '⁸', '9': '⁹', '+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽', ')': '⁾',
	'a': 'ᵃ', 'b': 'ᵇ', 'c': 'ᶜ', 'd': 'ᵈ', 'e': 'ᵉ', 'f': 'ᶠ', 'g': 'ᵍ', 'h': 'ʰ',
	'i': 'ⁱ', 'j': 'ʲ', 'k': 'ᵏ', 'l': 'ˡ', 'm': 'ᵐ', 'n': 'ⁿ', 'o': 'ᵒ', 'p': 'ᵖ',
	'r': 'ʳ', 's': 'ˢ', 't': 'ᵗ', 'u': 'ᵘ', 'v': 'ᵛ', 'w': 'ʷ', 'x': 'ˣ', 'y': 'ʸ',
	'z': 'ᶻ', 'T': 'ᵀ', '′': '′', '∗': '*',
}

// FracMap 有专用字符的常见分数
var FracMap = map[[2]string]string{
	{"1", "2"}: "½", {"1", "3"}: "⅓", {"2", "3"}: "⅔", {"1", "4"}: "¼", {"3", "4"}: "¾",
	{"1", "5"}: "⅕", {"2", "5"}: "⅖", {"3", "5"}: "⅗", {"4", "5"}: "⅘", {"1", "6"}: "⅙",
	{"5", "6"}: "⅚", {"1", "8"}: "⅛", {"3", "8"}: "⅜", {"5", "8"}: "⅝", {"7", "8"}: "⅞",
}

// LatexStyles 字体样式命令。值为 nil 表示原样输出。
var LatexStyles = map[string]map[rune]rune{
	`\mathbf`:   alphabet(0x1D400, 0x1D41A, nil),
	`\mathit`:   alphabet(0x1D434, 0x1D44E, map[rune]rune{'h': 'ℎ'}),
	`\mathcal`:  alphabet(0x1D4D0, 0x1D4EA, nil),
	`\mathfrak`: alphabet(0x1D504, 0x1D51E, map[rune]rune{'C': 'ℭ', 'H': 'ℌ', 'I': 'ℑ', 'R': 'ℜ', 'Z': 'ℨ'}),
	`\mathbb`: alphabet(0x1D538, 0x1D552, map[rune]rune{
		'C': 'ℂ', 'H': 'ℍ', 'N': 'ℕ', 'P': 'ℙ', 'Q': 'ℚ', 'R': 'ℝ', 'Z': 'ℤ',
	}),
	`\mathrm`: nil,
	`\mathsf`: nil,
	`\mathtt`: nil,
}

// alphabet 构造 A-Z、a-z 到数学字母区段的映射，exceptions 覆盖区段中的空位
func alphabet(upper, lower rune, exceptions map[rune]rune) map[rune]rune {
	m := make(map[rune]rune, 52)
	for i := rune(0); i < 26; i++ {
		m['A'+i] = upper + i
		m['a'+i] = lower + i
	}
	for k, v := range exceptions {
		m[k] = v
	}
	return m
}
